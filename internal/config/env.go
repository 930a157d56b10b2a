package config

type AuthSource string

const (
	AuthJWT    AuthSource = "jwt"
	AuthOAuth2 AuthSource = "oauth2"
)

type Auth struct {
	AuthSource AuthSource `mapstructure:"AUTH_SOURCE" default:"jwt"`
	JWTSecret  string     `mapstructure:"JWT_SECRET"`
	JWTIssuer  string     `mapstructure:"JWT_ISSUER" default:"reagentlab"`
	JWTTTLHour int        `mapstructure:"JWT_TTL_HOUR" default:"12"`
}

type OAuth2 struct {
	ClientID     string   `mapstructure:"OAUTH2_CLIENT_ID"`
	ClientSecret string   `mapstructure:"OAUTH2_CLIENT_SECRET"`
	Scopes       []string `mapstructure:"OAUTH2_SCOPES" default:"[\"openid\",\"profile\"]"`
	TokenURL     string   `mapstructure:"OAUTH2_TOKEN_URL" default:"http://localhost:8000/api/login/oauth/access_token"`
	AuthURL      string   `mapstructure:"OAUTH2_AUTH_URL" default:"http://localhost:8000/login/oauth/authorize"`
	UserInfoURL  string   `mapstructure:"OAUTH2_USERINFO_URL" default:"http://localhost:8000/api/userinfo"`
	RedirectURL  string   `mapstructure:"OAUTH2_REDIRECT_URL" default:"http://localhost:8080/api/auth/callback"`
	FrontendURL  string   `mapstructure:"FRONTEND_BASE_URL" default:"http://localhost:3000"`
}

type RPC struct {
	PubChem RPCPubChem `mapstructure:",squash"`
}

type RPCPubChem struct {
	Addr string `mapstructure:"PUBCHEM_ADDR" default:"https://pubchem.ncbi.nlm.nih.gov"`
}

type Database struct {
	Host     string `mapstructure:"DATABASE_HOST" default:"localhost"`
	Port     int    `mapstructure:"DATABASE_PORT" default:"5432"`
	Name     string `mapstructure:"DATABASE_NAME" default:"reagents"`
	User     string `mapstructure:"DATABASE_USER" default:"postgres"`
	Password string `mapstructure:"DATABASE_PASSWORD" default:"reagents"`
	SSLMode  string `mapstructure:"DATABASE_SSLMODE" default:"disable"`
}

type Redis struct {
	Host     string `mapstructure:"REDIS_HOST" default:"127.0.0.1"`
	Port     int    `mapstructure:"REDIS_PORT" default:"6379"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB" default:"0"`
}

type Server struct {
	Platform string `mapstructure:"PLATFORM" default:"reagentlab"`
	Service  string `mapstructure:"SERVICE" default:"api"`
	Port     int    `mapstructure:"WEB_PORT" default:"8080"`
	Env      string `mapstructure:"ENV" default:"dev"`
	Swagger  bool   `mapstructure:"SWAGGER_ENABLE" default:"true"`
}

type Log struct {
	LogPath  string `mapstructure:"LOG_PATH" default:"./info.log"`
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
}

type Trace struct {
	Version        string `mapstructure:"TRACE_VERSION" default:"0.0.1"`
	TraceEndpoint  string `mapstructure:"TRACE_TRACEENDPOINT" default:""`
	MetricEndpoint string `mapstructure:"TRACE_METRICENDPOINT" default:""`
	Stdout         bool   `mapstructure:"TRACE_STDOUT" default:"false"`
}

// Storage is the S3 compatible bucket generated documents are archived in. Empty endpoint disables it.
type Storage struct {
	Endpoint  string `mapstructure:"STORAGE_ENDPOINT"`
	AccessKey string `mapstructure:"STORAGE_ACCESS_KEY"`
	SecretKey string `mapstructure:"STORAGE_SECRET_KEY"`
	Bucket    string `mapstructure:"STORAGE_BUCKET" default:"reagent-documents"`
	UseSSL    bool   `mapstructure:"STORAGE_USE_SSL" default:"false"`
}

type Document struct {
	ChromePath    string `mapstructure:"DOCUMENT_CHROME_PATH"`
	RenderTimeout int    `mapstructure:"DOCUMENT_RENDER_TIMEOUT" default:"30"`
	Institution   string `mapstructure:"DOCUMENT_INSTITUTION" default:"Reagent Laboratory"`
}

type Rules struct {
	// procedures whose name starts with this prefix require a detailed stock location
	ProjectLocationPrefix string `mapstructure:"PROJECT_LOCATION_PREFIX" default:"NCN"`
}
