package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/uibridge/internal/client"
	"github.com/mj1618/uibridge/internal/command"
	"github.com/mj1618/uibridge/internal/output"
	"github.com/spf13/cobra"
)

var newClient = func() *client.Client {
	return client.New(endpointURL())
}

// callAndPrint runs one command against the server and prints its result.
// A failed command still prints, then returns an error for the exit status.
func callAndPrint(cmd *cobra.Command, name string, params command.Params) error {
	return callWithAndPrint(cmd, newClient(), name, params)
}

func callWithAndPrint(cmd *cobra.Command, c *client.Client, name string, params command.Params) error {
	res, err := c.Call(cmd.Context(), name, params)
	if err != nil {
		return err
	}
	if err := output.Fprint(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s failed (%s): %s", name, res.Code, res.Error)
	}
	return nil
}

// addTargetFlags registers the flags that address one widget.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Widget objectName")
	cmd.Flags().String("by", "", "Search type: objectName, title, class, text (used with --value)")
	cmd.Flags().String("value", "", "Search value (used with --by)")
	cmd.Flags().Bool("exact", false, "Require an exact match")
	cmd.Flags().String("parent", "", "Top-level window objectName to search within")
}

// targetParams converts target flags into command params. Only flags the
// user set are included so the server's own defaults apply.
func targetParams(cmd *cobra.Command) command.Params {
	p := command.Params{}
	setString(cmd, p, "name", "objectName")
	setString(cmd, p, "by", "type")
	setString(cmd, p, "value", "value")
	setString(cmd, p, "parent", "parent")
	if cmd.Flags().Changed("exact") {
		exact, _ := cmd.Flags().GetBool("exact")
		p["exact"] = exact
	}
	return p
}

func setString(cmd *cobra.Command, p command.Params, flag, key string) {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		p[key] = v
	}
}

func setBool(cmd *cobra.Command, p command.Params, flag, key string) {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetBool(flag)
		p[key] = v
	}
}

func setFloat(cmd *cobra.Command, p command.Params, flag, key string) {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetFloat64(flag)
		p[key] = v
	}
}

// parseParams turns key=value arguments into params. Values are typed the
// way a JSON client would send them: true/false, integers, floats, inline
// JSON objects or arrays, and strings otherwise.
func parseParams(args []string) (command.Params, error) {
	p := command.Params{}
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q (use key=value)", arg)
		}
		p[key] = parseValue(raw)
	}
	return p, nil
}

func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if strings.HasPrefix(raw, "{") || strings.HasPrefix(raw, "[") {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
	}
	return raw
}
