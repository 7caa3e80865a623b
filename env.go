package qalqulator

// Env is the set of variables available to expressions. Evaluating a binding
// stores its value in the Env. It is not safe to use an Env concurrently.
type Env struct {
	names map[string]Number
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  Number
	}
	varsopt map[string]Number
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val Number) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]Number) EnvOption {
	return varsopt(vars)
}

// NewEnv creates a new environment.
func NewEnv(opts ...EnvOption) *Env {
	var env Env
	return env.Clone(opts...)
}

// Clone creates a copy of an environment and applies options to it. Later
// bindings in either environment do not affect the other.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{names: make(map[string]Number, len(env.names))}
	for name, val := range env.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.names[opt.name] = opt.val
		case varsopt:
			for k, v := range opt {
				n.names[k] = v
			}
		default:
			panic("qalqulator: unknown option type")
		}
	}
	return &n
}

// Set sets the value of a variable, replacing any previous value. Returns env
// for chaining.
func (env *Env) Set(name string, value Number) *Env {
	if env.names == nil {
		env.names = make(map[string]Number)
	}
	env.names[name] = value
	return env
}

// Lookup returns the value of a variable. The second result is false if
// there is no such variable.
func (env *Env) Lookup(name string) (Number, bool) {
	v, ok := env.names[name]
	return v, ok
}

// Names returns the names of all variables in sorted order.
func (env *Env) Names() []string {
	r := make([]string, 0, len(env.names))
	for k := range env.names {
		r = append(r, k)
	}
	sortstrs(r)
	return r
}

// Len returns the number of variables.
func (env *Env) Len() int {
	return len(env.names)
}
