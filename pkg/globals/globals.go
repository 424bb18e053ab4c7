package globals

// FirmwareVersion is set at build time via -ldflags
var FirmwareVersion = "dev"

// Writable data directory
var DataDir = "/data"

// Firmware data
var FirmwareDataDir = DataDir + "/.firmware-data"

// Default config file location
var ConfigPath = DataDir + "/camera.yaml"

// Logs
var LogsPath = FirmwareDataDir + "/logs.json"

// Device identity
var IdentityPath = FirmwareDataDir + "/identity.json"

// Backing file for the durable counter store
var NVRAMPath = FirmwareDataDir + "/nvram.bin"

// Removable card mount point
var CardRoot = "/media/card"
