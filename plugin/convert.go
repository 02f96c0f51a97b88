// Package plugin serves a constitution linter to editor hosts.
//
// This file contains conversion functions between google.protobuf.Struct
// messages and the native Go types carried by the service.

package plugin

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/jokarl/constlint/engine"
	"github.com/jokarl/constlint/lint"
)

// =============================================================================
// Document Conversion
// =============================================================================

// toProtoDocument converts engine.Document to a Check request.
func toProtoDocument(doc engine.Document) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"uri":          doc.URI,
		"text":         doc.Text,
		"language_tag": doc.LanguageTag,
	})
}

// fromProtoDocument converts a Check request to engine.Document.
func fromProtoDocument(s *structpb.Struct) engine.Document {
	fields := s.GetFields()
	return engine.Document{
		URI:         fields["uri"].GetStringValue(),
		Text:        fields["text"].GetStringValue(),
		LanguageTag: fields["language_tag"].GetStringValue(),
	}
}

// =============================================================================
// Finding Conversion
// =============================================================================

// toProtoFindings converts findings to a Check response.
func toProtoFindings(findings []lint.Finding) (*structpb.Struct, error) {
	list := make([]interface{}, len(findings))
	for i, f := range findings {
		list[i] = map[string]interface{}{
			"code":       f.Code,
			"message":    f.Message,
			"severity":   f.Severity.String(),
			"range":      toProtoRange(f.Range),
			"source":     f.Source,
			"link":       f.Link,
			"suggestion": f.Suggestion,
		}
	}
	return structpb.NewStruct(map[string]interface{}{"findings": list})
}

// fromProtoFindings converts a Check response to findings.
// The result is never nil.
func fromProtoFindings(s *structpb.Struct) []lint.Finding {
	values := s.GetFields()["findings"].GetListValue().GetValues()
	findings := make([]lint.Finding, 0, len(values))
	for _, v := range values {
		fields := v.GetStructValue().GetFields()
		severity, _ := lint.ParseSeverity(fields["severity"].GetStringValue())
		findings = append(findings, lint.Finding{
			Code:       fields["code"].GetStringValue(),
			Message:    fields["message"].GetStringValue(),
			Severity:   severity,
			Range:      fromProtoRange(fields["range"].GetStructValue()),
			Source:     fields["source"].GetStringValue(),
			Link:       fields["link"].GetStringValue(),
			Suggestion: fields["suggestion"].GetStringValue(),
		})
	}
	return findings
}

// =============================================================================
// Range Conversion
// =============================================================================

func toProtoRange(r lint.Range) map[string]interface{} {
	return map[string]interface{}{
		"start": toProtoPos(r.Start),
		"end":   toProtoPos(r.End),
	}
}

func fromProtoRange(s *structpb.Struct) lint.Range {
	fields := s.GetFields()
	return lint.Range{
		Start: fromProtoPos(fields["start"].GetStructValue()),
		End:   fromProtoPos(fields["end"].GetStructValue()),
	}
}

func toProtoPos(p lint.Pos) map[string]interface{} {
	return map[string]interface{}{
		"line":   p.Line,
		"column": p.Column,
	}
}

func fromProtoPos(s *structpb.Struct) lint.Pos {
	fields := s.GetFields()
	return lint.Pos{
		Line:   int(fields["line"].GetNumberValue()),
		Column: int(fields["column"].GetNumberValue()),
	}
}

// =============================================================================
// Rule Conversion
// =============================================================================

// toProtoRules converts rule descriptions to a Rules response.
func toProtoRules(infos []lint.RuleInfo) (*structpb.Struct, error) {
	list := make([]interface{}, len(infos))
	for i, info := range infos {
		list[i] = map[string]interface{}{
			"code":     info.Code,
			"severity": info.Severity.String(),
			"enabled":  info.Enabled,
			"link":     info.Link,
		}
	}
	return structpb.NewStruct(map[string]interface{}{"rules": list})
}

// fromProtoRules converts a Rules response to rule descriptions.
func fromProtoRules(s *structpb.Struct) []lint.RuleInfo {
	values := s.GetFields()["rules"].GetListValue().GetValues()
	if len(values) == 0 {
		return nil
	}
	infos := make([]lint.RuleInfo, 0, len(values))
	for _, v := range values {
		fields := v.GetStructValue().GetFields()
		severity, _ := lint.ParseSeverity(fields["severity"].GetStringValue())
		infos = append(infos, lint.RuleInfo{
			Code:     fields["code"].GetStringValue(),
			Severity: severity,
			Enabled:  fields["enabled"].GetBoolValue(),
			Link:     fields["link"].GetStringValue(),
		})
	}
	return infos
}
