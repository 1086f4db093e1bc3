package requests

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScheduleFile reads a process list from a YAML file. JSON files work as
// well since JSON is valid YAML.
func LoadScheduleFile(path string) (*ScheduleRequests, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read process file %s: %w", path, err)
	}
	request, err := ParseScheduleYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse process file %s: %w", path, err)
	}
	return request, nil
}

func ParseScheduleYAML(data []byte) (*ScheduleRequests, error) {
	var request ScheduleRequests
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, err
	}
	return &request, nil
}
