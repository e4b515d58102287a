package shared

type Config struct {
	Environment *bool     `yaml:"environment" validate:"required"`
	Port        *string   `yaml:"port" validate:"required"`
	BackendURL  *string   `yaml:"backend_url" validate:"required"`
	FrontendURL *string   `yaml:"frontend_url" validate:"required"`
	Cors        []*string `yaml:"cors" validate:"required"`
	JWTSecret   *string   `yaml:"jwt_secret" validate:"required"`
	Postgres    *string   `yaml:"postgres" validate:"required"`

	// Certificate storage
	CertificateDir *string `yaml:"certificate_dir" validate:"required"`
	WatermarkPath  *string `yaml:"watermark_path"`

	// Batch generation cron expression, defaults to 02:00 UTC daily
	BatchSchedule *string `yaml:"batch_schedule"`

	// Optional object-storage mirror
	MinIoEnabled      *bool   `yaml:"minio_enabled"`
	MinIoEndpoint     *string `yaml:"minio_endpoint"`
	MinIoAccessKey    *string `yaml:"minio_access_key"`
	MinIoSecretKey    *string `yaml:"minio_secret_key"`
	BucketCertificate *string `yaml:"bucket_certificate"`

	// Issuance notification mail
	MailEnabled *bool   `yaml:"mail_enabled"`
	MailHost    *string `yaml:"mail_host"`
	MailUser    *string `yaml:"mail_user"`
	MailPass    *string `yaml:"mail_pass"`

	// Optional PDF signing
	SigningEnabled  *bool   `yaml:"signing_enabled"`
	SigningCertPath *string `yaml:"signing_cert_path"`
	SigningKeyPath  *string `yaml:"signing_key_path"`
}
