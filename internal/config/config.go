package config

import "time"

// Config is the root configuration for the review service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Logging LoggingConfig `yaml:"logging"`
	Auth    AuthConfig    `yaml:"auth"`
	LLM     LLMConfig     `yaml:"llm"`
	Review  ReviewConfig  `yaml:"review"`
}

// ServiceConfig holds HTTP server settings.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `yaml:"port" env:"CHECKER_PORT"`
	Debug        bool          `yaml:"debug" env:"APP_DEBUG"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	MaxUploadMB  int           `yaml:"max_upload_mb"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// AuthConfig controls bearer-token auth on the review endpoint.
// An empty secret leaves the endpoint open.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

// LLMConfig configures the nuance/typo classifier backend.
type LLMConfig struct {
	APIKey  string        `yaml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"OPENAI_BASE_URL"`
	Model   string        `yaml:"model" env:"OPENAI_MODEL"`
	Timeout time.Duration `yaml:"timeout"`
	RPS     int           `yaml:"rps"`
}

// ReviewConfig holds the rule lists applied to each document. Callers may
// override any of these per request; zero-value fields fall back to defaults.
type ReviewConfig struct {
	MinImages            int      `yaml:"min_images" json:"min_images"`
	RecommendedHashtags  []string `yaml:"recommended_hashtags" json:"recommended_hashtags"`
	B2BKeywords          []string `yaml:"b2b_keywords" json:"b2b_keywords"`
	BasicFeatureKeywords []string `yaml:"basic_feature_keywords" json:"basic_feature_keywords"`
	ShopbyKeywords       []string `yaml:"shopby_keywords" json:"shopby_keywords"`
	HaedreamKeywords     []string `yaml:"haedream_keywords" json:"haedream_keywords"`
	ClientBrands         []string `yaml:"client_brands" json:"client_brands"`
	CompetitorKeywords   []string `yaml:"competitor_keywords" json:"competitor_keywords"`
	AvoidedPhrases       []string `yaml:"avoided_phrases" json:"avoided_phrases"`
	TitleRequiredKeyword string   `yaml:"title_required_keyword" json:"title_required_keyword"`
	SuspiciousKeywords   []string `yaml:"suspicious_keywords" json:"suspicious_keywords"`
}

// SetDefaults fills unset fields with sensible defaults.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "blog-checker"
	}
	if c.Service.Version == "" {
		c.Service.Version = "1.0.0"
	}
	if c.Service.Port == 0 {
		c.Service.Port = 8080
	}
	if c.Service.ReadTimeout == 0 {
		c.Service.ReadTimeout = 30 * time.Second
	}
	if c.Service.WriteTimeout == 0 {
		c.Service.WriteTimeout = 60 * time.Second
	}
	if c.Service.MaxUploadMB == 0 {
		c.Service.MaxUploadMB = 20
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4.1-mini"
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 20 * time.Second
	}
	c.Review.SetDefaults()
}

// SetDefaults fills unset rule lists with the standard review rules.
func (r *ReviewConfig) SetDefaults() {
	if r.MinImages == 0 {
		r.MinImages = 15
	}
	if r.RecommendedHashtags == nil {
		r.RecommendedHashtags = []string{"#자사몰제작", "#자사몰만들기", "#무료쇼핑몰만들기", "#온라인쇼핑몰창업", "#B2B몰제작"}
	}
	if r.B2BKeywords == nil {
		r.B2BKeywords = []string{"B2B", "도매몰", "도매 쇼핑몰", "폐쇄몰", "가맹점 발주", "프랜차이즈"}
	}
	if r.BasicFeatureKeywords == nil {
		r.BasicFeatureKeywords = []string{"기본 기능", "기본기능", "기본으로 제공", "기본 탑재", "별도 개발 없이", "추가 개발 없이", "바로 사용할 수 있는"}
	}
	if r.ShopbyKeywords == nil {
		r.ShopbyKeywords = []string{"샵바이", "shopby", "Shopby", "SHOPBY", "샵바이 엔터프라이즈"}
	}
	if r.HaedreamKeywords == nil {
		r.HaedreamKeywords = []string{"해드림", "헤드림"}
	}
	if r.ClientBrands == nil {
		r.ClientBrands = []string{}
	}
	if r.CompetitorKeywords == nil {
		r.CompetitorKeywords = []string{"카페24", "아임웹", "메이크샵", "shopify"}
	}
	if r.AvoidedPhrases == nil {
		r.AvoidedPhrases = []string{"쇼핑몰호스팅사", "쇼핑몰 호스팅사", "전자상거래 플랫폼", "반응형 스킨", "반응형스킨"}
	}
	if r.SuspiciousKeywords == nil {
		r.SuspiciousKeywords = []string{"B2B", "도매몰", "폐쇄몰", "프랜차이즈", "가맹점", "무료", "0원", "프로모션", "무상", "해드림", "헤드림"}
	}
}

// Load reads service configuration from the given YAML file, applies
// defaults, then environment overrides. A missing file is tolerated.
func Load(path string) (*Config, error) {
	return loadWithDefaults(path, (*Config).SetDefaults)
}
