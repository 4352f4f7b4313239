// Package config loads application configuration from environment variables
// and an optional .env file.
//
// Configuration is split into partial configs owned by their packages
// (manifest, database, storage, logger) and assembled here. Defaults are
// declared as struct tags on the partial configs and bound into Viper by
// reflection, so every key is registered for automatic env lookup: the env
// variable DATABASE_PORT populates the database.port key, MANIFEST_URL
// populates manifest.url, and so on.
package config
