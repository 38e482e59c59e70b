// Package config loads, normalizes, and validates camlink configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CAMLINK_DATASET_DIR. The Config type centralizes every knob the matcher and
// CLI need, so the dataset location, report destinations, and run history
// store are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical log formats, and clear validation errors.
package config
