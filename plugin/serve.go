// Package plugin serves a constitution linter to editor hosts.
//
// An editor integration launches the linter as a go-plugin subprocess and
// dispenses PluginName to obtain a Service. Each open or changed document
// is sent to Check, and the returned findings replace the ones shown for
// that document.
//
// Example host code:
//
//	client := goplugin.NewClient(&goplugin.ClientConfig{
//	    HandshakeConfig:  plugin.Handshake,
//	    Plugins:          plugin.PluginMap,
//	    Cmd:              exec.Command("constlint", "serve", "--root", root),
//	    AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolGRPC},
//	})
//	rpc, _ := client.Client()
//	raw, _ := rpc.Dispense(plugin.PluginName)
//	linter := raw.(plugin.Service)
//
// The host binds its audit.CommandName command to Service.Audit.
package plugin

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jokarl/constlint/audit"
)

// ServeOpts contains options for serving the linter.
type ServeOpts struct {
	// Service is the linter to serve.
	Service Service
	// Logger receives go-plugin logs. Defaults to a warn-level stderr logger.
	Logger hclog.Logger
}

// Serve starts the plugin server.
//
// The function blocks until the host disconnects. When invoked directly
// (outside of an editor host), it prints a message and returns.
func Serve(opts *ServeOpts) {
	if opts == nil || opts.Service == nil {
		// Nothing to serve
		return
	}

	// Check if we're being invoked by a host (via magic cookie)
	if os.Getenv(MagicCookieKey) != MagicCookieValue {
		printDirectInvocationMessage(os.Stderr, opts.Service)
		return
	}

	logger := opts.Logger
	if logger == nil {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Level:  hclog.Warn,
			Output: os.Stderr,
		})
	}

	pluginMap := map[string]plugin.Plugin{
		PluginName: &LinterPlugin{Impl: opts.Service},
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins:         pluginMap,
		GRPCServer:      plugin.DefaultGRPCServer,
		Logger:          logger,
	})
}

// printDirectInvocationMessage prints a helpful message when the server
// is invoked directly instead of via an editor host.
func printDirectInvocationMessage(w io.Writer, svc Service) {
	fmt.Fprint(w, "This is the constlint editor plugin server.\n\n")
	rules, err := svc.Rules(context.Background())
	switch {
	case err != nil:
		fmt.Fprintf(w, "Rules: unavailable (%s)\n", err)
	case len(rules) == 0:
		fmt.Fprint(w, "Rules: none (no constitution loaded)\n")
	default:
		fmt.Fprint(w, "Rules:\n")
		for _, r := range rules {
			state := "enabled"
			if !r.Enabled {
				state = "disabled"
			}
			fmt.Fprintf(w, "  - %s (%s, %s)\n", r.Code, r.Severity, state)
		}
	}
	fmt.Fprintf(w, "\nCommands:\n  - %s\n", audit.CommandName)
	fmt.Fprint(w, "\nEditor hosts start it through go-plugin with the handshake cookie set.\n")
	fmt.Fprintf(w, "  %s=%s\n", MagicCookieKey, MagicCookieValue)
}
