package utils

// FilterSlice maps and filters in one pass.
func FilterSlice[S any, T any](in []S, f func(S) (T, bool)) []T {
	out := make([]T, 0, len(in))
	for _, s := range in {
		if t, ok := f(s); ok {
			out = append(out, t)
		}
	}
	return out
}

// FilterUniqSlice is FilterSlice without duplicates, keeping first-seen order.
func FilterUniqSlice[S any, T comparable](in []S, f func(S) (T, bool)) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, s := range in {
		t, ok := f(s)
		if !ok {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func Slice2Map[S any, K comparable, V any](in []S, f func(S) (K, V)) map[K]V {
	out := make(map[K]V, len(in))
	for _, s := range in {
		k, v := f(s)
		out[k] = v
	}
	return out
}

func Slice2MapSlice[S any, K comparable, V any](in []S, f func(S) (K, V, bool)) map[K][]V {
	out := make(map[K][]V)
	for _, s := range in {
		if k, v, ok := f(s); ok {
			out[k] = append(out[k], v)
		}
	}
	return out
}

func Contains[T comparable](in []T, v T) bool {
	for _, s := range in {
		if s == v {
			return true
		}
	}
	return false
}
