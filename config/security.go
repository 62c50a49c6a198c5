package config

// Security 进程级安全配置，启动时加载一次，运行期间只读
type Security struct {
	// 所有接口共享的 CSRF Token
	CsrfToken string `json:"csrf_token" yaml:"csrf_token"`
	// 黑名单 IP，命中直接拒绝
	IPBlocklist []string `json:"ip_blocklist" yaml:"ip_blocklist"`
}
