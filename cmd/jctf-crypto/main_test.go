package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	icrypto "jctf-crypto/internal/crypto"
	"jctf-crypto/internal/report"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func exitCode(err error) int {
	var ee exitError
	if errors.As(err, &ee) { return ee.code }
	return -1
}

func TestXORDefaultsPrintTwoLines(t *testing.T) {
	out, err := run(t, "xor")
	if err != nil { t.Fatal(err) }
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 { t.Fatalf("want 2 lines, got %q", out) }
	if lines[0] != "0x8bc1752a8998133b4545b783c91bc66c14831caa2344e42d8c51c8b4dcd93ea1e81e1d0ab343" { t.Fatalf("key line %q", lines[0]) }
	if lines[1] != "0x216bdf802332b991efef1d2963b16cc6be29b60089ee4e8726fb621e7673940b42b4b7a019e9" { t.Fatalf("recovered line %q", lines[1]) }
}

func TestXORParseErrorExitCode(t *testing.T) {
	_, err := run(t, "xor", "--flag", "abc")
	if exitCode(err) != 4 || !errors.Is(err, icrypto.ErrParse) { t.Fatalf("got %v", err) }
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := base64.StdEncoding.EncodeToString(make([]byte, 32))
	iv := base64.StdEncoding.EncodeToString(make([]byte, 16))

	ct, err := run(t, "encrypt", "--key", key, "--iv", iv, "--plaintext", "TESTDATA1234567")
	if err != nil { t.Fatal(err) }
	ct = strings.TrimSpace(ct)

	raw, err := run(t, "decrypt", "--key", key, "--iv", iv, "--ciphertext", ct)
	if err != nil { t.Fatal(err) }
	if raw != "TESTDATA1234567\x01\n" { t.Fatalf("raw output %q", raw) }

	quoted, err := run(t, "decrypt", "--key", key, "--iv", iv, "--ciphertext", ct, "--unpad", "--format", "quoted")
	if err != nil { t.Fatal(err) }
	if quoted != "\"TESTDATA1234567\"\n" { t.Fatalf("quoted output %q", quoted) }
}

func TestDecryptShortIV(t *testing.T) {
	iv := base64.StdEncoding.EncodeToString(make([]byte, 8))
	out, err := run(t, "decrypt", "--iv", iv)
	if exitCode(err) != 4 || !errors.Is(err, icrypto.ErrInvalidLength) { t.Fatalf("got %v", err) }
	if out != "" { t.Fatalf("nothing should be printed on failure, got %q", out) }
}

func TestDecryptUnknownFormat(t *testing.T) {
	_, err := run(t, "decrypt", "--format", "base32")
	if exitCode(err) != 3 { t.Fatalf("got %v", err) }
}

func TestSolveWritesReport(t *testing.T) {
	p := filepath.Join(t.TempDir(), "solve.json")
	out, err := run(t, "solve", "--out", p)
	if err != nil { t.Fatal(err) }
	if !strings.HasSuffix(out, "0x216bdf802332b991efef1d2963b16cc6be29b60089ee4e8726fb621e7673940b42b4b7a019e9\n") {
		t.Fatalf("solve output %q", out)
	}
	b, err := os.ReadFile(p)
	if err != nil { t.Fatal(err) }
	var res report.Results
	if err := json.Unmarshal(b, &res); err != nil { t.Fatal(err) }
	if res.Command != "solve" || len(res.Entries) != 2 { t.Fatalf("report %+v", res) }
}

func TestConfigFileOverridesLiterals(t *testing.T) {
	p := filepath.Join(t.TempDir(), "c.yaml")
	body := "xor:\n  flagKey: \"0f\"\n  flag: \"00\"\n  filler: \"ff\"\n"
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil { t.Fatal(err) }
	out, err := run(t, "--config", p, "xor")
	if err != nil { t.Fatal(err) }
	if out != "0xf\n0xf0\n" { t.Fatalf("got %q", out) }

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "xor")
	if exitCode(err) != 3 { t.Fatalf("got %v", err) }
}
