package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// PrivateFilePermissions is used for files holding the API key: (rw-------).
	PrivateFilePermissions os.FileMode = 0o600

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)

const (
	// AppName names the binary, the temp folder and the default config file.
	AppName = "esv-reader"

	// ExtensionMP3 is the extension of audio passages.
	ExtensionMP3 = ".mp3"
)
