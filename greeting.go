// Package greeting provides the fixed greeting exposed to host environments.
package greeting

// Text is the greeting returned by Get.
const Text = "Hello world"

type (
	// Provider produces a greeting on demand.
	Provider interface {
		Greeting() string
	}

	// ProviderFunc adapts an ordinary function to a Provider.
	ProviderFunc func() string
)

// Default is the Provider backed by Get.
var Default Provider = ProviderFunc(Get)

// Get returns the greeting. It takes no input, has no side effects and is safe
// to call from any number of goroutines.
func Get() string {
	return Text
}

func (f ProviderFunc) Greeting() string {
	return f()
}
