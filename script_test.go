package bloqs

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"
)

const testScript = "test script"

func TestScript_WritePlain(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil)
	script, err := s.Script(Inline(testScript), WithEncode(false))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}

	got := script.String()
	want := "<script>" + testScript + "</script>"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if s.DecoderNeeded() {
		t.Error("DecoderNeeded() = true after plain render")
	}
}

func TestScript_WriteEncoded(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil)
	script, err := s.Script(Inline(testScript), WithEncode(true))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}

	got := script.String()
	if !strings.HasPrefix(got, "<script>"+BootstrapToken) {
		t.Errorf("String() = %q, want prefix %q", got, "<script>"+BootstrapToken)
	}
	if !strings.HasSuffix(got, "</script>") {
		t.Errorf("String() = %q, want suffix </script>", got)
	}
	if !strings.Contains(got, DecoderName) {
		t.Errorf("String() = %q, should name the %s decoder", got, DecoderName)
	}
	if strings.Contains(got, testScript) {
		t.Errorf("String() = %q, should not contain the script verbatim", got)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(got, "<script>"), "</script>")
	decoded, err := NewDeflateCodec().Decode(body)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded != testScript {
		t.Errorf("Decode() = %q, want %q", decoded, testScript)
	}
	if !s.DecoderNeeded() {
		t.Error("DecoderNeeded() = false after encoded render")
	}
}

func TestScript_WriteCompressed(t *testing.T) {
	t.Parallel()

	t.Run("encoded by default", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t, nil)
		script, err := s.Script(Inline(testScript))
		if err != nil {
			t.Fatalf("Script() error = %v", err)
		}

		var buf bytes.Buffer
		if err := script.WriteCompressed(&buf, testScript); err != nil {
			t.Fatalf("WriteCompressed() error = %v", err)
		}
		got := buf.String()
		if !strings.HasPrefix(got, BootstrapToken) {
			t.Errorf("WriteCompressed() = %q, want prefix %q", got, BootstrapToken)
		}
		if strings.Contains(got, testScript) {
			t.Errorf("WriteCompressed() = %q, should not contain the script", got)
		}
	})

	t.Run("unchanged when disabled", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t, nil, WithDefaultEncode(false))
		script, err := s.Script(Inline(testScript), WithEncode(false))
		if err != nil {
			t.Fatalf("Script() error = %v", err)
		}

		var buf bytes.Buffer
		if err := script.WriteCompressed(&buf, testScript); err != nil {
			t.Fatalf("WriteCompressed() error = %v", err)
		}
		if buf.String() != testScript {
			t.Errorf("WriteCompressed() = %q, want %q", buf.String(), testScript)
		}
	})

	t.Run("writes the given text, not the resource body", func(t *testing.T) {
		t.Parallel()

		s := newTestSession(t, nil)
		script, err := s.Script(Inline("body()"), WithEncode(false))
		if err != nil {
			t.Fatalf("Script() error = %v", err)
		}

		var buf bytes.Buffer
		if err := script.WriteCompressed(&buf, "other()"); err != nil {
			t.Fatalf("WriteCompressed() error = %v", err)
		}
		if buf.String() != "other()" {
			t.Errorf("WriteCompressed() = %q, want %q", buf.String(), "other()")
		}
	})
}

func TestScript_EncodeDefault(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil, WithDefaultEncode(false))

	inherit, err := s.Script(Inline(testScript))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	forcedOn, err := s.Script(Inline(testScript), WithEncode(true))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	forcedOff, err := s.Script(Inline(testScript), WithEncode(false))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}

	tests := []struct {
		name          string
		sessionEncode bool
		want          map[*Script]bool
	}{
		{
			name:          "session default off",
			sessionEncode: false,
			want:          map[*Script]bool{inherit: false, forcedOn: true, forcedOff: false},
		},
		{
			name:          "session default flipped on",
			sessionEncode: true,
			want:          map[*Script]bool{inherit: true, forcedOn: true, forcedOff: false},
		},
	}

	// Subtests share the session and run in order.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetEncode(tt.sessionEncode)
			for script, want := range tt.want {
				if got := script.Encoded(); got != want {
					t.Errorf("Encoded() = %v, want %v (inherit=%v)", got, want, script == inherit)
				}
				encoded := !strings.Contains(script.String(), testScript)
				if encoded != want {
					t.Errorf("String() encoded = %v, want %v", encoded, want)
				}
			}
		})
	}
}

func TestScript_Named(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, map[string]string{"some_name.js": "named()"})

	script, err := s.Script(Named("some_name"), WithEncode(false))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}
	if script.Ext() != ExtScript {
		t.Errorf("Ext() = %q, want %q", script.Ext(), ExtScript)
	}
	if got := script.String(); got != "<script>named()</script>" {
		t.Errorf("String() = %q, want %q", got, "<script>named()</script>")
	}
}

func TestScript_Validation(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil)
	_, err := s.Script(Source{})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Script(Source{}) error = %v, want ErrValidation", err)
	}
}

func TestScript_WriteTo(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil)
	script, err := s.Script(Inline(testScript), WithEncode(false))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}

	t.Run("counts bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := script.WriteTo(&buf)
		if err != nil {
			t.Fatalf("WriteTo() error = %v", err)
		}
		if n != int64(buf.Len()) {
			t.Errorf("WriteTo() n = %d, want %d", n, buf.Len())
		}
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		t.Parallel()

		_, err := script.WriteTo(failingWriter{})
		if !errors.Is(err, errWriteFailed) {
			t.Errorf("WriteTo() error = %v, want errWriteFailed", err)
		}
	})
}

// recordingCodec quotes scripts behind the bootstrap token and records them.
type recordingCodec struct {
	seen []string
}

func (c *recordingCodec) Encode(w io.Writer, script string) error {
	c.seen = append(c.seen, script)
	_, err := io.WriteString(w, BootstrapToken+strconv.Quote(script)+")")
	return err
}

func (c *recordingCodec) Decode(payload string) (string, error) {
	quoted := strings.TrimSuffix(strings.TrimPrefix(payload, BootstrapToken), ")")
	return strconv.Unquote(quoted)
}

func TestScript_InjectedCodec(t *testing.T) {
	t.Parallel()

	codec := &recordingCodec{}
	s := newTestSession(t, nil, WithCodec(codec))
	script, err := s.Script(Inline("alert(1)"))
	if err != nil {
		t.Fatalf("Script() error = %v", err)
	}

	got := script.String()
	if got != "<script>"+BootstrapToken+"\"alert(1)\")</script>" {
		t.Errorf("String() = %q", got)
	}
	if len(codec.seen) != 1 || codec.seen[0] != "alert(1)" {
		t.Errorf("codec saw %q, want [alert(1)]", codec.seen)
	}
}
