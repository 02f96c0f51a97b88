// Package plugin serves a constitution linter to editor hosts.
//
// This file implements the go-plugin GRPCPlugin interface. The service is
// registered from a hand-written descriptor and carries
// google.protobuf.Struct messages, so no generated stubs are involved.

package plugin

import (
	"context"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/constlint/audit"
	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/lint"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "constlint.Linter"

// Ensure LinterPlugin implements plugin.GRPCPlugin.
var _ plugin.GRPCPlugin = (*LinterPlugin)(nil)

// LinterPlugin is the implementation of plugin.GRPCPlugin for the linter service.
// This is used by both the host (to create a client) and the server.
type LinterPlugin struct {
	plugin.Plugin
	// Impl is the linter being served.
	// Only used on the server side.
	Impl Service
}

// GRPCServer is called by go-plugin to register the gRPC service.
func (p *LinterPlugin) GRPCServer(_ *plugin.GRPCBroker, s *grpc.Server) error {
	s.RegisterService(&linterServiceDesc, &GRPCLinterServer{impl: p.Impl})
	return nil
}

// GRPCClient is called by the host to create a gRPC client.
func (p *LinterPlugin) GRPCClient(_ context.Context, _ *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &GRPCLinterClient{conn: c}, nil
}

// =============================================================================
// Service descriptor
// =============================================================================

// linterServer is the handler type of the service descriptor.
type linterServer interface {
	check(context.Context, *structpb.Struct) (*structpb.Struct, error)
	reload(context.Context, *structpb.Struct) (*structpb.Struct, error)
	rules(context.Context, *structpb.Struct) (*structpb.Struct, error)
	audit(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var linterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*linterServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Check", Handler: unaryHandler("Check", linterServer.check)},
		{MethodName: "Reload", Handler: unaryHandler("Reload", linterServer.reload)},
		{MethodName: "Rules", Handler: unaryHandler("Rules", linterServer.rules)},
		{MethodName: "Audit", Handler: unaryHandler("Audit", linterServer.audit)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "constlint/linter.proto",
}

type unaryCall func(linterServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		s := srv.(linterServer)
		if interceptor == nil {
			return call(s, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod(method),
		}
		return interceptor(ctx, in, info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(s, ctx, req.(*structpb.Struct))
		})
	}
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// =============================================================================
// GRPCLinterServer - Server side
// =============================================================================

// GRPCLinterServer wraps a Service to implement the gRPC service.
// This runs in the linter process and handles requests from the host.
type GRPCLinterServer struct {
	impl Service
}

var _ linterServer = (*GRPCLinterServer)(nil)

func (s *GRPCLinterServer) check(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	findings, err := s.impl.Check(ctx, fromProtoDocument(req))
	if err != nil {
		return nil, err
	}
	return toProtoFindings(findings)
}

func (s *GRPCLinterServer) reload(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	enabled, err := s.impl.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]interface{}{"enabled": enabled})
}

func (s *GRPCLinterServer) rules(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	infos, err := s.impl.Rules(ctx)
	if err != nil {
		return nil, err
	}
	return toProtoRules(infos)
}

// audit answers with the started process and the host command it serves.
func (s *GRPCLinterServer) audit(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	pid, err := s.impl.Audit(ctx)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]interface{}{
		"command": audit.CommandName,
		"pid":     pid,
	})
}

// =============================================================================
// GRPCLinterClient - Host side (implements Service)
// =============================================================================

// GRPCLinterClient calls a served linter. It implements Service.
type GRPCLinterClient struct {
	conn *grpc.ClientConn
}

var _ Service = (*GRPCLinterClient)(nil)

// Check sends doc to the linter and returns its findings.
func (c *GRPCLinterClient) Check(ctx context.Context, doc engine.Document) ([]lint.Finding, error) {
	req, err := toProtoDocument(doc)
	if err != nil {
		return nil, err
	}
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod("Check"), req, resp); err != nil {
		return nil, err
	}
	return fromProtoFindings(resp), nil
}

// Reload asks the linter to re-read its constitution.
func (c *GRPCLinterClient) Reload(ctx context.Context) (bool, error) {
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod("Reload"), &structpb.Struct{}, resp); err != nil {
		return false, err
	}
	return resp.GetFields()["enabled"].GetBoolValue(), nil
}

// Rules returns the rules of the linter's constitution.
func (c *GRPCLinterClient) Rules(ctx context.Context) ([]lint.RuleInfo, error) {
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod("Rules"), &structpb.Struct{}, resp); err != nil {
		return nil, err
	}
	return fromProtoRules(resp), nil
}

// Audit asks the linter to start the project audit and returns its pid.
func (c *GRPCLinterClient) Audit(ctx context.Context) (int, error) {
	resp := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, fullMethod("Audit"), &structpb.Struct{}, resp); err != nil {
		return 0, err
	}
	return int(resp.GetFields()["pid"].GetNumberValue()), nil
}
