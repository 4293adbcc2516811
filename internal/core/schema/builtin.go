package schema

import "github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"

// Default returns a registry pre-populated with the shipped node kinds.
// The editor extends this at startup for catalog kinds it adds.
func Default() *Registry {
	r := NewRegistry()
	for _, s := range builtins() {
		r.Register(s)
	}
	return r
}

func builtins() []*NodeKindSchema {
	return []*NodeKindSchema{
		{
			Kind:    graph.KindManualTrigger,
			Outputs: []string{graph.HandleMain},
		},
		{
			Kind: graph.KindWebhookTrigger,
			Fields: []FieldDef{
				{ID: "path", Required: true, Kind: ValueString},
				{ID: "method", Required: false, Kind: ValueString},
			},
			Outputs: []string{graph.HandleMain},
		},
		{
			Kind: graph.KindScheduleTrigger,
			Fields: []FieldDef{
				{ID: "cron", Required: true, Kind: ValueCron},
			},
			Outputs: []string{graph.HandleMain},
		},
		{
			Kind: graph.KindHTTPRequest,
			Fields: []FieldDef{
				{ID: "url", Required: true, Kind: ValueURL},
				{ID: "method", Required: true, Kind: ValueString},
				{ID: "body", Required: false, Kind: ValueObject},
				{ID: "authCredential", Required: false, Kind: ValueString, Credential: true},
			},
			Inputs:  []string{graph.HandleMain},
			Outputs: []string{graph.HandleMain, graph.HandleError},
		},
		{
			Kind: graph.KindAIModel,
			Fields: []FieldDef{
				{ID: "model", Required: true, Kind: ValueString},
				{ID: "prompt", Required: true, Kind: ValueString},
				{ID: "temperature", Required: false, Kind: ValueNumber},
				{ID: "apiCredential", Required: true, Kind: ValueString, Credential: true},
			},
			Inputs:  []string{graph.HandleMain},
			Outputs: []string{graph.HandleMain, graph.HandleError},
		},
		{
			Kind: graph.KindIf,
			Fields: []FieldDef{
				// Presence is enforced by the branch validator with a
				// dedicated code, not by the generic required pass.
				{ID: "condition", Required: false, Kind: ValueString},
			},
			Inputs:  []string{graph.HandleMain},
			Outputs: []string{graph.HandleTrue, graph.HandleFalse},
		},
		{
			Kind: graph.KindSwitch,
			Fields: []FieldDef{
				{ID: "expression", Required: true, Kind: ValueString},
			},
			Inputs: []string{graph.HandleMain},
			// Case handles are declared per node ("case:<n>"); only the
			// static ones are listed here.
			Outputs: []string{graph.HandleDefault},
		},
		{
			Kind: graph.KindCode,
			Fields: []FieldDef{
				{ID: "code", Required: true, Kind: ValueCode},
			},
			Inputs:  []string{graph.HandleMain},
			Outputs: []string{graph.HandleMain, graph.HandleError},
		},
		{
			Kind: graph.KindTransform,
			Fields: []FieldDef{
				{ID: "mapping", Required: true, Kind: ValueObject},
			},
			Inputs:  []string{graph.HandleMain},
			Outputs: []string{graph.HandleMain},
		},
		{
			Kind: graph.KindSubPipeline,
			Fields: []FieldDef{
				{ID: "pipelineId", Required: true, Kind: ValueString},
			},
			Inputs:  []string{graph.HandleMain},
			Outputs: []string{graph.HandleMain, graph.HandleError},
		},
		{
			Kind:   graph.KindGroup,
			Fields: []FieldDef{{ID: "label", Required: false, Kind: ValueString}},
		},
	}
}
