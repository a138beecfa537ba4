package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v2"

	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/apihelpers"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/db"
	questionbank "github.com/Trust-Tai/bioptrics-survey-backend/pkg/db/question-bank"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/notifications"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/question"
	smtpclient "github.com/Trust-Tai/bioptrics-survey-backend/pkg/smtp-client"
	"github.com/Trust-Tai/bioptrics-survey-backend/pkg/utils"
)

// Environment variables
const (
	ENV_CONFIG_FILE_PATH = "CONFIG_FILE_PATH"

	ENV_GIN_DEBUG_MODE            = "GIN_DEBUG_MODE"
	ENV_AUTHORING_API_LISTEN_PORT = "AUTHORING_API_LISTEN_PORT"
	ENV_CORS_ALLOW_ORIGINS        = "CORS_ALLOW_ORIGINS"

	ENV_AUTHORING_USER_JWT_SIGN_KEY   = "AUTHORING_USER_JWT_SIGN_KEY"
	ENV_AUTHORING_USER_JWT_EXPIRES_IN = "AUTHORING_USER_JWT_EXPIRES_IN"

	ENV_REQUIRE_MUTUAL_TLS     = "REQUIRE_MUTUAL_TLS"
	ENV_MUTUAL_TLS_SERVER_CERT = "MUTUAL_TLS_SERVER_CERT"
	ENV_MUTUAL_TLS_SERVER_KEY  = "MUTUAL_TLS_SERVER_KEY"
	ENV_MUTUAL_TLS_CA_CERT     = "MUTUAL_TLS_CA_CERT"

	ENV_INSTANCE_IDS = "INSTANCE_IDS"

	ENV_QUESTION_BANK_DB_CONNECTION_STR     = "QUESTION_BANK_DB_CONNECTION_STR"
	ENV_QUESTION_BANK_DB_USERNAME           = "QUESTION_BANK_DB_USERNAME"
	ENV_QUESTION_BANK_DB_PASSWORD           = "QUESTION_BANK_DB_PASSWORD"
	ENV_QUESTION_BANK_DB_CONNECTION_PREFIX  = "QUESTION_BANK_DB_CONNECTION_PREFIX"
	ENV_QUESTION_BANK_DB_NAME_PREFIX        = "QUESTION_BANK_DB_NAME_PREFIX"
	ENV_QUESTION_BANK_DB_TIMEOUT            = "QUESTION_BANK_DB_TIMEOUT"
	ENV_QUESTION_BANK_DB_IDLE_CONN_TIMEOUT  = "QUESTION_BANK_DB_IDLE_CONN_TIMEOUT"
	ENV_QUESTION_BANK_DB_MAX_POOL_SIZE      = "QUESTION_BANK_DB_MAX_POOL_SIZE"
	ENV_QUESTION_BANK_DB_RUN_INDEX_CREATION = "QUESTION_BANK_DB_RUN_INDEX_CREATION"

	ENV_SMTP_SERVER_CONFIG_PATH = "SMTP_SERVER_CONFIG_PATH"

	ENV_LOG_TO_FILE     = "LOG_TO_FILE"
	ENV_LOG_FILENAME    = "LOG_FILENAME"
	ENV_LOG_MAX_SIZE    = "LOG_MAX_SIZE"
	ENV_LOG_MAX_AGE     = "LOG_MAX_AGE"
	ENV_LOG_MAX_BACKUPS = "LOG_MAX_BACKUPS"
	ENV_LOG_LEVEL       = "LOG_LEVEL"
	ENV_LOG_INCLUDE_SRC = "LOG_INCLUDE_SRC"
)

var (
	questionBankDBService *questionbank.QuestionBankDBService
)

type Config struct {
	// Gin configs
	GinConfig struct {
		DebugMode    bool     `json:"debug_mode" yaml:"debug_mode"`
		AllowOrigins []string `json:"allow_origins" yaml:"allow_origins"`
		Port         string   `json:"port" yaml:"port"`

		MTLS struct {
			Use              bool                        `json:"use" yaml:"use"`
			CertificatePaths apihelpers.CertificatePaths `json:"certificate_paths" yaml:"certificate_paths"`
		} `json:"mtls" yaml:"mtls"`
	} `json:"gin_config" yaml:"gin_config"`

	// JWT configs
	AuthoringUserJWTSignKey   string        `json:"authoring_user_jwt_sign_key" yaml:"authoring_user_jwt_sign_key"`
	AuthoringUserJWTExpiresIn time.Duration `json:"-" yaml:"-"`

	AllowedInstanceIDs []string `json:"allowed_instance_ids" yaml:"allowed_instance_ids"`

	// DB configs
	DBConfigs struct {
		QuestionBankDB db.DBConfigYaml `json:"question_bank_db" yaml:"question_bank_db"`
	} `json:"db_configs" yaml:"db_configs"`

	QuestionBankDBConfig db.DBConfig `json:"-" yaml:"-"`

	// Publish notification configs
	NotificationConfigs struct {
		CollaboratorEmails map[string][]string `json:"collaborator_emails" yaml:"collaborator_emails"`
	} `json:"notification_configs" yaml:"notification_configs"`

	SMTPServerConfigPath string `json:"smtp_server_config_path" yaml:"smtp_server_config_path"`
}

func init() {
	utils.ReadConfigFromEnvAndInitLogger(
		ENV_LOG_LEVEL,
		ENV_LOG_INCLUDE_SRC,
		ENV_LOG_TO_FILE,
		ENV_LOG_FILENAME,
		ENV_LOG_MAX_SIZE,
		ENV_LOG_MAX_AGE,
		ENV_LOG_MAX_BACKUPS,
	)

	conf = initConfig()
	if !conf.GinConfig.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	initDBs()

	question.Init(questionBankDBService)

	initNotifications()
}

func initDBs() {
	var err error
	questionBankDBService, err = questionbank.NewQuestionBankDBService(conf.QuestionBankDBConfig)
	if err != nil {
		slog.Error("Error connecting to Question Bank DB", slog.String("error", err.Error()))
		panic(err)
	}
}

func initNotifications() {
	serverList := smtpclient.SMTPServerList{}
	if conf.SMTPServerConfigPath != "" {
		if err := serverList.ReadFromFile(conf.SMTPServerConfigPath); err != nil {
			slog.Error("Error reading SMTP server config", slog.String("error", err.Error()))
		}
	}

	notifications.Init(serverList, conf.NotificationConfigs.CollaboratorEmails)
}

func initConfig() Config {
	conf := Config{}

	// Read config from file
	yamlFile, err := os.ReadFile(os.Getenv(ENV_CONFIG_FILE_PATH))
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	}

	err = yaml.UnmarshalStrict(yamlFile, &conf)
	if err != nil {
		fmt.Println("Error reading config file: " + err.Error())
		conf = Config{}
	}

	if port := os.Getenv(ENV_AUTHORING_API_LISTEN_PORT); port != "" {
		conf.GinConfig.Port = port
	}
	if os.Getenv(ENV_GIN_DEBUG_MODE) != "" {
		conf.GinConfig.DebugMode = os.Getenv(ENV_GIN_DEBUG_MODE) == "true"
	}
	if origins := os.Getenv(ENV_CORS_ALLOW_ORIGINS); origins != "" {
		conf.GinConfig.AllowOrigins = strings.Split(origins, ",")
	}

	// JWT configs
	if signKey := os.Getenv(ENV_AUTHORING_USER_JWT_SIGN_KEY); signKey != "" {
		conf.AuthoringUserJWTSignKey = signKey
	}
	if conf.AuthoringUserJWTSignKey == "" {
		slog.Error("Authoring user JWT sign key not set - configure AUTHORING_USER_JWT_SIGN_KEY env variable.")
		panic("Authoring user JWT sign key not set")
	}
	expInVal := os.Getenv(ENV_AUTHORING_USER_JWT_EXPIRES_IN)
	conf.AuthoringUserJWTExpiresIn, err = utils.ParseDurationString(expInVal)
	if err != nil {
		slog.Error("error during initConfig", slog.String("error", err.Error()), ENV_AUTHORING_USER_JWT_EXPIRES_IN, expInVal)
		panic(err)
	}

	// Mutual TLS configs
	if os.Getenv(ENV_REQUIRE_MUTUAL_TLS) == "true" {
		conf.GinConfig.MTLS.Use = true
		conf.GinConfig.MTLS.CertificatePaths = apihelpers.CertificatePaths{
			ServerCertPath: os.Getenv(ENV_MUTUAL_TLS_SERVER_CERT),
			ServerKeyPath:  os.Getenv(ENV_MUTUAL_TLS_SERVER_KEY),
			CACertPath:     os.Getenv(ENV_MUTUAL_TLS_CA_CERT),
		}
	}

	// Allowed instance IDs
	if instanceIDs := os.Getenv(ENV_INSTANCE_IDS); instanceIDs != "" {
		conf.AllowedInstanceIDs = strings.Split(instanceIDs, ",")
	}

	// Question bank db configs: from the config file when present,
	// otherwise from the environment. Credentials from the environment win
	// either way.
	if conf.DBConfigs.QuestionBankDB.ConnectionStr != "" {
		if username := os.Getenv(ENV_QUESTION_BANK_DB_USERNAME); username != "" {
			conf.DBConfigs.QuestionBankDB.Username = username
		}
		if password := os.Getenv(ENV_QUESTION_BANK_DB_PASSWORD); password != "" {
			conf.DBConfigs.QuestionBankDB.Password = password
		}
		conf.QuestionBankDBConfig = db.DBConfigFromYamlObj(conf.DBConfigs.QuestionBankDB, conf.AllowedInstanceIDs)
	} else {
		conf.QuestionBankDBConfig = readQuestionBankDBConfig(conf.AllowedInstanceIDs)
	}

	if smtpPath := os.Getenv(ENV_SMTP_SERVER_CONFIG_PATH); smtpPath != "" {
		conf.SMTPServerConfigPath = smtpPath
	}

	return conf
}

func readQuestionBankDBConfig(instanceIDs []string) db.DBConfig {
	return db.ReadDBConfigFromEnv(
		"question bank DB",
		ENV_QUESTION_BANK_DB_CONNECTION_STR,
		ENV_QUESTION_BANK_DB_USERNAME,
		ENV_QUESTION_BANK_DB_PASSWORD,
		ENV_QUESTION_BANK_DB_CONNECTION_PREFIX,
		ENV_QUESTION_BANK_DB_TIMEOUT,
		ENV_QUESTION_BANK_DB_IDLE_CONN_TIMEOUT,
		ENV_QUESTION_BANK_DB_MAX_POOL_SIZE,
		ENV_QUESTION_BANK_DB_NAME_PREFIX,
		ENV_QUESTION_BANK_DB_RUN_INDEX_CREATION,
		instanceIDs,
	)
}
