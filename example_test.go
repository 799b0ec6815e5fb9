package bloqs_test

import (
	"fmt"
	"strings"

	"github.com/alnah/go-bloqs"
)

// Example shows a sub-block declaring a script while it is built, and the
// document embedding it once at assembly.
func Example() {
	loader := staticLoader{"chart.js": "drawChart()"}
	s, err := bloqs.NewSession(bloqs.WithLoader(loader), bloqs.WithDefaultEncode(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for range 3 {
		if err := s.RegisterInteractive("chart"); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	out, err := s.WriteInteractive()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	// Output: <script>drawChart()</script>
}

// ExampleNewStyle renders an inline stylesheet with an id.
func ExampleNewStyle() {
	style, err := bloqs.NewStyle(bloqs.Inline("p{margin:0}"), bloqs.WithTagID("base"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(style)
	// Output: <style type="text/css" id="base">p{margin:0}</style>
}

// ExampleDependencyTracker keeps the first occurrence of each id.
func ExampleDependencyTracker() {
	deps := bloqs.NewDependencyTracker("a", "b").Add("a", "c")
	fmt.Println(deps.Slice())
	// Output: [a b c]
}

// ExampleScript_Encoded shows a compressed script and its round trip.
func ExampleScript_Encoded() {
	s, err := bloqs.NewSession(bloqs.WithLoader(staticLoader{}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	script, err := s.Script(bloqs.Inline("console.log('hi')"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tag := script.String()
	fmt.Println(strings.HasPrefix(tag, "<script>"+bloqs.BootstrapToken+bloqs.DecoderName))

	payload := strings.TrimSuffix(strings.TrimPrefix(tag, "<script>"), "</script>")
	decoded, err := bloqs.NewDeflateCodec().Decode(payload)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(decoded)
	// Output:
	// true
	// console.log('hi')
}

type staticLoader map[string]string

func (l staticLoader) Load(name, ext string) (string, error) {
	content, ok := l[name+ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", bloqs.ErrResourceNotFound, name+ext)
	}
	return content, nil
}
