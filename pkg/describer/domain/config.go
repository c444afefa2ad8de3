package domain

// A list of config keys understood by the describer.

const (
	// ConfigKeyPredictionURL the endpoint of the prediction service (the full "classify/detect image" URL)
	ConfigKeyPredictionURL = "predictionURL"
	// ConfigKeyPredictionKey the API key sent in the Prediction-Key header
	ConfigKeyPredictionKey = "predictionKey"
	// ConfigKeyPredictionTimeout how long to wait for the prediction service, in milliseconds
	ConfigKeyPredictionTimeout = "predictionTimeout"
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyTempDirectory where downloaded images are stored before they're sent to the service
	ConfigKeyTempDirectory = "tempDirectory"
	// ConfigKeyMaxDownloadSize the maximum size of a downloaded image or page, in bytes
	ConfigKeyMaxDownloadSize = "maxDownloadSize"
)
