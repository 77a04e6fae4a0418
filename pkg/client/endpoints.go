package client

// Server-relative resource paths. These exact strings are part of the wire
// contract with the archive.
const (
	searchPath           = "search"
	searchDIMPath        = "searchDIM"
	providersPath        = "providers"
	dumpPath             = "dump"
	exportFilePath       = "exportFile"
	exportListPath       = "export/list"
	dic2pngPath          = "dic2png"
	dictagsPath          = "dictags"
	queryServicePath     = "management/dicom/query"
	storageServicePath   = "management/dicom/storage"
	indexerSettingsPath  = "management/settings/index"
	transferSettingsPath = "management/settings/transfer"
	querySettingsPath    = "management/settings/dicom/query"
	remoteStoragesPath   = "management/settings/storage/dicom"
	dicomSettingsPath    = "management/settings/dicom"
	indexTaskPath        = "management/tasks/index"
	unindexTaskPath      = "management/tasks/unindex"
	removeTaskPath       = "management/tasks/remove"
	tasksPath            = "index/task"
	versionPath          = "ext/version"
	loggerPath           = "logger"
	loginPath            = "login"
	logoutPath           = "logout"
	webuiPath            = "webui"
	userPath             = "user"
	presetsPath          = "presets"
)
