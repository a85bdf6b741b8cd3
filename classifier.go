package crossval

// Config carries named classifier options. The engine passes it through
// to the constructor unexamined.
type Config map[string]interface{}

// Int reads an integer option, falling back to def when absent.
func (cfg Config) Int(key string, def int) int {
	if v, ok := cfg[key]; ok {
		switch i := v.(type) {
		case int:
			return i
		case float64:
			return int(i)
		}
	}
	return def
}

// Float64 reads a float option, falling back to def when absent.
func (cfg Config) Float64(key string, def float64) float64 {
	if v, ok := cfg[key]; ok {
		switch f := v.(type) {
		case float64:
			return f
		case int:
			return float64(f)
		}
	}
	return def
}

// String reads a string option, falling back to def when absent.
func (cfg Config) String(key string, def string) string {
	if v, ok := cfg[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

// Classifier is the external collaborator under evaluation. A fresh
// instance is constructed, trained and queried for every split.
// Predict must return one label per feature vector, in the same order.
type Classifier interface {
	Train(x [][]float64, y []string) error
	Predict(x [][]float64) ([]string, error)
}

// Constructor creates a fresh classifier from a config.
type Constructor func(cfg Config) Classifier
