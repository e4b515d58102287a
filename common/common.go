package common

import (
	"github.com/campusflow/cert-api/type/shared"
	"github.com/minio/minio-go/v7"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

var Config *shared.Config
var Gorm *gorm.DB
var MinIOClient *minio.Client
var Dialer *gomail.Dialer
