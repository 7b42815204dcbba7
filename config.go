package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration keys for the e-mail account. Values come from
// ~/.config/pdfebc/config.toml, overridable through PDFEBC_* environment
// variables.
const (
	keyUser       = "email.user"
	keyPassword   = "email.password"
	keyReceiver   = "email.receiver"
	keySMTPServer = "email.smtp_server"
	keySMTPPort   = "email.smtp_port"

	defaultSMTPServer = "smtp.gmail.com"
	defaultSMTPPort   = 587
)

// requiredConfigKeys are the keys that must be set for sending e-mail.
var requiredConfigKeys = []string{keyUser, keyPassword, keyReceiver, keySMTPServer}

// setConfigDefaults registers defaults for the keys that have sensible ones.
// User, password and receiver have no defaults and must come from the
// configuration file or the environment.
func setConfigDefaults() {
	viper.SetDefault(keySMTPServer, defaultSMTPServer)
	viper.SetDefault(keySMTPPort, defaultSMTPPort)
}

// validConfigExists reports whether every key needed for sending e-mail is
// set and non-empty.
func validConfigExists() bool {
	for _, key := range requiredConfigKeys {
		if viper.GetString(key) == "" {
			return false
		}
	}
	return viper.GetInt(keySMTPPort) != 0
}

// diagnoseConfig prints the state of the configuration: which file was read
// (if any) and which required keys are present. Secret values are masked.
func diagnoseConfig(cb statusCallback) {
	if used := viper.ConfigFileUsed(); used != "" {
		cb(fmt.Sprintf("Configuration file: %s", used))
	} else {
		cb("No configuration file found.")
	}
	for _, key := range requiredConfigKeys {
		value := viper.GetString(key)
		switch {
		case value == "":
			cb(fmt.Sprintf("  %s: NOT SET", key))
		case key == keyPassword:
			cb(fmt.Sprintf("  %s: ******", key))
		default:
			cb(fmt.Sprintf("  %s: %s", key, value))
		}
	}
	cb(fmt.Sprintf("  %s: %d", keySMTPPort, viper.GetInt(keySMTPPort)))
	if validConfigExists() {
		cb("The configuration is complete, e-mail sending is available.")
	} else {
		cb("The configuration is incomplete, e-mail sending will not work.")
	}
}
