package tools

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages the collection of available tools.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*ServerTool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*ServerTool),
	}
}

// Register registers a tool with the registry.
func (r *Registry) Register(tool *ServerTool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tool == nil || tool.Tool == nil {
		return fmt.Errorf("tool cannot be nil")
	}

	name := tool.Tool.Name
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %s is already registered", name)
	}

	r.tools[name] = tool
	return nil
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (*ServerTool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, exists := r.tools[name]
	return tool, exists
}

// List returns all registered tool names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tools)
}

// Validate checks if all registered tools are properly configured.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, tool := range r.tools {
		if tool.Tool.Name != name {
			return fmt.Errorf("tool name mismatch: registered as %s but reports name %s", name, tool.Tool.Name)
		}

		if tool.Tool.Description == "" {
			return fmt.Errorf("tool %s has empty description", name)
		}

		if tool.RegisterFunc == nil {
			return fmt.Errorf("tool %s has nil register function", name)
		}
	}

	return nil
}
