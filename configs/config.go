package configs

import (
	"log"
	"os"
	"strconv"
	"sync"
)

// AppConfig holds the application configuration.
// It's populated once by LoadConfig.
var AppConfig Configuration
var once sync.Once

// Configuration defines the structure for application settings.
type Configuration struct {
	JWTSecret  string
	ServerPort string
	APIBaseURL string

	LDAPURL          string
	LDAPBindDN       string
	LDAPBindPassword string
	LDAPBaseDN       string

	DefaultPageNumber int
	DefaultPageSize   int
}

const (
	defaultJWTSecret  = "directory"      // Default JWT secret, used if env var is not set.
	envJWTSecretKey   = "JWT_SECRET_KEY" // Environment variable name for the JWT secret.
	defaultServerPort = "8080"           // Default server port.
	envServerPortKey  = "SERVER_PORT"    // Environment variable name for the server port.

	defaultAPIBaseURL = "http://localhost:8080" // 分页链接使用的默认基础URL
	envAPIBaseURLKey  = "API_BASE_URL"          // 基础URL环境变量名

	defaultLDAPURL       = "ldap://localhost:389" // 默认目录后端地址
	envLDAPURLKey        = "LDAP_URL"
	envLDAPBindDNKey     = "LDAP_BIND_DN"
	envLDAPBindPassKey   = "LDAP_BIND_PASSWORD"
	defaultLDAPBaseDN    = "dc=example,dc=org"
	envLDAPBaseDNKey     = "LDAP_BASE_DN"

	defaultPageNumber  = 1  // 默认页码
	defaultPageSize    = 10 // 默认每页条数
	envPageNumberKey   = "DEFAULT_PAGE_NUMBER"
	envPageSizeKey     = "DEFAULT_PAGE_SIZE"
)

// LoadConfig loads configuration from environment variables or defaults.
// It should be called once at application startup.
func LoadConfig() {
	once.Do(func() {
		jwtSecret := os.Getenv(envJWTSecretKey)
		if jwtSecret == "" {
			jwtSecret = defaultJWTSecret
			log.Printf("警告: %s 环境变量未设置。正在使用默认的JWT密钥。请在生产环境中设置此变量以保证安全。", envJWTSecretKey)
		}

		serverPort := os.Getenv(envServerPortKey)
		if serverPort == "" {
			serverPort = defaultServerPort
			log.Printf("信息: %s 环境变量未设置。正在使用默认端口 %s。", envServerPortKey, defaultServerPort)
		}

		apiBaseURL := os.Getenv(envAPIBaseURLKey)
		if apiBaseURL == "" {
			apiBaseURL = defaultAPIBaseURL
			log.Printf("信息: %s 环境变量未设置。分页链接将使用默认基础URL %s。这在生产环境中可能不正确。", envAPIBaseURLKey, defaultAPIBaseURL)
		}

		ldapURL := os.Getenv(envLDAPURLKey)
		if ldapURL == "" {
			ldapURL = defaultLDAPURL
			log.Printf("信息: %s 环境变量未设置。正在使用默认目录后端地址 %s。", envLDAPURLKey, defaultLDAPURL)
		}

		ldapBaseDN := os.Getenv(envLDAPBaseDNKey)
		if ldapBaseDN == "" {
			ldapBaseDN = defaultLDAPBaseDN
			log.Printf("信息: %s 环境变量未设置。正在使用默认搜索基准 %s。", envLDAPBaseDNKey, defaultLDAPBaseDN)
		}

		AppConfig = Configuration{
			JWTSecret:  jwtSecret,
			ServerPort: serverPort,
			APIBaseURL: apiBaseURL,

			LDAPURL:          ldapURL,
			LDAPBindDN:       os.Getenv(envLDAPBindDNKey),
			LDAPBindPassword: os.Getenv(envLDAPBindPassKey),
			LDAPBaseDN:       ldapBaseDN,

			DefaultPageNumber: intFromEnv(envPageNumberKey, defaultPageNumber),
			DefaultPageSize:   intFromEnv(envPageSizeKey, defaultPageSize),
		}

		log.Println("应用配置已加载。")
	})
}

// intFromEnv 读取整数环境变量，未设置或非法时回退默认值并记录日志
func intFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("警告: %s 的值 %q 不是有效的正整数，回退默认值 %d。", key, raw, fallback)
		return fallback
	}
	return n
}
