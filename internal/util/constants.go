package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimePDF         = "application/pdf"
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"
)

// Evidence uploads: contracts, certificates, audit reports.
var AllowedDocumentTypes = []string{
	MimePDF,
	MimeImage,
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"text/plain",
	"application/zip",
}
