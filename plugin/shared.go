// Package plugin serves a constitution linter to editor hosts.
//
// This file contains shared configuration used by both the host (the
// editor integration) and the linter process for establishing gRPC
// communication via hashicorp/go-plugin.

package plugin

import (
	"github.com/hashicorp/go-plugin"
)

// ProtocolVersion is the plugin protocol version.
// Increment this when making breaking changes to the service.
const ProtocolVersion = 1

// MagicCookieKey is the environment variable name for the magic cookie.
const MagicCookieKey = "CONSTLINT_PLUGIN_MAGIC_COOKIE"

// MagicCookieValue is the expected value of the magic cookie.
// This prevents the server from being started directly from a shell.
const MagicCookieValue = "constlint-plugin-v1"

// Handshake is the HandshakeConfig used to configure go-plugin.
// The host and the linter must agree on these values to communicate.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  ProtocolVersion,
	MagicCookieKey:   MagicCookieKey,
	MagicCookieValue: MagicCookieValue,
}

// PluginName is the name used to identify the linter plugin.
const PluginName = "linter"

// PluginMap is the map of plugins a host can dispense.
var PluginMap = map[string]plugin.Plugin{
	PluginName: &LinterPlugin{},
}
