package utils

const (
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"

	// ConfigFileName is the name of the application configuration file.
	ConfigFileName = ".filetree.yaml"
	// GlobalConfigDirectoryName is the directory below the user home holding global configuration.
	GlobalConfigDirectoryName = ".config/filetree"

	// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage reports a fatal application failure.
	ApplicationExecutionFailedMessage = "application failed"
)
