package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KaushalJainAI/workflow-assistant-sub000/internal/core/graph"
	"github.com/KaushalJainAI/workflow-assistant-sub000/pkg/serialization"
	"github.com/KaushalJainAI/workflow-assistant-sub000/pkg/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate <graph.json>",
	Short: "Validate a pipeline graph snapshot",
	Long:  "Parse a canvas graph snapshot and run the full structural and semantic soundness check against it.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().Bool("with-backend", false, "Also consult the execution back end")
	validateCmd.Flags().Bool("check-credentials", false, "Ask the back end to verify credential ownership")
	validateCmd.Flags().Bool("ignore-error-handles", false, "Exclude error-routing edges from cycle detection")
	validateCmd.Flags().Int("max-nesting-depth", 0, "Visual-group nesting limit (0 = default)")
	validateCmd.Flags().StringP("report", "o", "", "Write the full report to this file")
	validateCmd.Flags().String("format", "json", "Report file format: json or msgpack")
	validateCmd.Flags().String("compress", "none", "Report file compression: none, gzip or zstd")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	withBackend, _ := cmd.Flags().GetBool("with-backend")
	checkCreds, _ := cmd.Flags().GetBool("check-credentials")
	ignoreErrorHandles, _ := cmd.Flags().GetBool("ignore-error-handles")
	maxNesting, _ := cmd.Flags().GetInt("max-nesting-depth")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading graph file: %w", err)
	}

	var snap graph.Snapshot
	if err := json.Unmarshal(src, &snap); err != nil {
		return fmt.Errorf("parsing graph file: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Pipeline: %s (%d nodes, %d edges)\n", snap.Name, len(snap.Nodes), len(snap.Edges))
	}

	var backend *validation.BackendClient
	if url := viper.GetString("backend"); url != "" {
		backend = validation.NewBackendClient(url)
	}
	runner := validation.NewRunner(backend)

	result := runner.Validate(context.Background(), snap.Nodes, snap.Edges, validation.Options{
		ValidateWithBackend: withBackend,
		CheckCredentials:    checkCreds,
		IgnoreErrorHandles:  ignoreErrorHandles,
		MaxNestingDepth:     maxNesting,
	})

	printFindings(result)
	fmt.Println(result.Summary())

	if report, _ := cmd.Flags().GetString("report"); report != "" {
		if err := writeReport(cmd, report, result); err != nil {
			return err
		}
	}

	if !result.IsValid {
		cmd.SilenceUsage = true
		return fmt.Errorf("pipeline is invalid (%d errors)", len(result.Errors))
	}
	return nil
}

func printFindings(result *validation.Result) {
	for _, f := range result.Errors {
		printFinding("ERROR", f)
	}
	for _, f := range result.Warnings {
		printFinding("WARN ", f)
	}
	for _, f := range result.Info {
		printFinding("INFO ", f)
	}
}

func printFinding(level string, f validation.Finding) {
	loc := ""
	if f.NodeID != "" {
		loc = " [" + f.NodeID
		if f.Field != "" {
			loc += "." + f.Field
		}
		loc += "]"
	}
	fmt.Printf("%s %-24s %s%s\n", level, f.Code, f.Message, loc)
}

func writeReport(cmd *cobra.Command, path string, result *validation.Result) error {
	format, _ := cmd.Flags().GetString("format")
	compress, _ := cmd.Flags().GetString("compress")

	ser := serialization.NewSerializer(serialization.Config{
		Codec:       serialization.CodecByName(format),
		Compression: serialization.CompressionType(compress),
	})
	data, err := ser.Serialize(result)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
