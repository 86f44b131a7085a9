package command

import (
	"encoding/json"
	"fmt"
)

// Command names exposed to the frontend. These are part of the invoke
// contract and must not change between releases.
const (
	CmdGreet            = "greet"
	CmdCheckAPIHealth   = "check_api_health"
	CmdOpenOutputFolder = "open_output_folder"
	CmdGetPlatformInfo  = "get_platform_info"
)

// Argument shapes for the command surface
type greetArgs struct {
	Name string `json:"name"`
}

type checkAPIHealthArgs struct {
	URL string `json:"url"`
}

type openOutputFolderArgs struct {
	Path string `json:"path"`
}

// RegisterShellHandlers binds the four shell commands to their services.
// get_platform_info takes no arguments and ignores whatever it is given.
func RegisterShellHandlers(r *Registry, greeter Greeter, checker HealthChecker, opener FolderOpener, reporter PlatformReporter) {
	r.Register(CmdGreet, func(raw json.RawMessage) (any, error) {
		var args greetArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return greeter.Greet(args.Name), nil
	})

	r.Register(CmdCheckAPIHealth, func(raw json.RawMessage) (any, error) {
		var args checkAPIHealthArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return checker.Check(args.URL)
	})

	r.Register(CmdOpenOutputFolder, func(raw json.RawMessage) (any, error) {
		var args openOutputFolderArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, opener.OpenFolder(args.Path)
	})

	r.Register(CmdGetPlatformInfo, func(json.RawMessage) (any, error) {
		return reporter.Info(), nil
	})
}

// decodeArgs unmarshals the host-serialized arguments into dst
func decodeArgs(raw json.RawMessage, dst any) error {
	if len(raw) == 0 {
		return fmt.Errorf("missing command arguments")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid command arguments: %v", err)
	}
	return nil
}
