package buildsys

// BuildSystem captures the lifecycle shared by build helpers. CMake is the
// only implementation today; the interface keeps the invocation layer
// swappable so command code can be tested against a fake.
type BuildSystem interface {
	// Basic paths.
	Source(dir string)

	// Environment helper.
	Env(key, val string)

	// Lifecycle.
	Configure(args ...string) error
	Build(args ...string) error

	// Where artifacts land.
	OutputDir() string
}
