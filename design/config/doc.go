// Package config defines the YAML/JSON configuration model that can be passed
// to the designfmt CLI on startup as well as helper functions to load and
// validate the configuration document from a local path or URL.
package config
