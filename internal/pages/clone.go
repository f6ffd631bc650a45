package pages

import "reflect"

// CloneComponents performs a deep copy of the component list so callers can
// mutate the result without aliasing the source tree.
func CloneComponents(components []*ComponentInstance) []*ComponentInstance {
	if components == nil {
		return nil
	}
	cloned := make([]*ComponentInstance, 0, len(components))
	for _, component := range components {
		cloned = append(cloned, CloneComponent(component))
	}
	return cloned
}

// CloneComponent deep-copies a single component instance.
func CloneComponent(component *ComponentInstance) *ComponentInstance {
	if component == nil {
		return nil
	}
	out := &ComponentInstance{
		ID:    component.ID,
		Type:  component.Type,
		Props: CloneProps(component.Props),
	}
	if component.Zones != nil {
		out.Zones = make(map[string]Zone, len(component.Zones))
		for name, zone := range component.Zones {
			out.Zones[name] = Zone{ComponentIDs: append([]string(nil), zone.ComponentIDs...)}
		}
	}
	return out
}

// CloneProps deep-copies a property bag. The walk tracks visited maps and
// slices by identity so an accidentally cyclic prop graph clones into a
// finite structure instead of recursing unboundedly.
func CloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out, _ := cloneValue(props, map[uintptr]bool{}).(map[string]any)
	return out
}

func cloneValue(value any, visited map[uintptr]bool) any {
	switch typed := value.(type) {
	case map[string]any:
		if typed == nil {
			return map[string]any(nil)
		}
		ptr := reflect.ValueOf(typed).Pointer()
		if visited[ptr] {
			return map[string]any{}
		}
		visited[ptr] = true
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[k] = cloneValue(v, visited)
		}
		delete(visited, ptr)
		return out
	case []any:
		if typed == nil {
			return []any(nil)
		}
		ptr := reflect.ValueOf(typed).Pointer()
		if len(typed) > 0 && visited[ptr] {
			return []any{}
		}
		visited[ptr] = true
		out := make([]any, len(typed))
		for i, v := range typed {
			out[i] = cloneValue(v, visited)
		}
		delete(visited, ptr)
		return out
	case map[string]string:
		out := make(map[string]string, len(typed))
		for k, v := range typed {
			out[k] = v
		}
		return out
	case []string:
		return append([]string(nil), typed...)
	default:
		// Scalars are immutable; anything exotic is shared as-is.
		return value
	}
}
