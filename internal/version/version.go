package version

var (
	AppName    = "Selfie Bot"
	AppVersion = "dev"
)
