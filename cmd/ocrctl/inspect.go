package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/VitaliiAI/OCRMaster/internal/checkpoint"
)

var inspectFormat string

type paramInfo struct {
	Name     string `yaml:"name"`
	Shape    []int  `yaml:"shape,flow"`
	Elements int    `yaml:"elements"`
}

type checkpointManifest struct {
	Path          string      `yaml:"path"`
	Parameters    []paramInfo `yaml:"parameters"`
	TotalElements int         `yaml:"total_elements"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <checkpoint>",
	Short: "List the parameters stored in a checkpoint file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := checkpoint.Load(args[0])
		if err != nil {
			return err
		}

		manifest := checkpointManifest{Path: args[0]}
		for name, tensor := range params {
			manifest.Parameters = append(manifest.Parameters, paramInfo{
				Name:     name,
				Shape:    tensor.Shape,
				Elements: tensor.NumElements(),
			})
			manifest.TotalElements += tensor.NumElements()
		}
		sort.Slice(manifest.Parameters, func(i, j int) bool {
			return manifest.Parameters[i].Name < manifest.Parameters[j].Name
		})

		out := cmd.OutOrStdout()
		switch inspectFormat {
		case "yaml":
			data, err := yaml.Marshal(manifest)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(data))
		case "text":
			for _, p := range manifest.Parameters {
				fmt.Fprintf(out, "%s  shape=%v  elements=%d\n", p.Name, p.Shape, p.Elements)
			}
			fmt.Fprintf(out, "%d parameters, %d elements total\n", len(manifest.Parameters), manifest.TotalElements)
		default:
			return fmt.Errorf("unsupported format: %s (valid: text, yaml)", inspectFormat)
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "text", "output format: text|yaml")
}
