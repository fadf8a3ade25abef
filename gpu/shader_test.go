// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"errors"
	"strings"
	"testing"
)

const spirvMagic = 0x07230203

// skipIfUnsupported skips the test when naga reports a language feature it
// does not implement yet.
func skipIfUnsupported(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("naga limitation: %v", err)
	}
}

func TestCompileTransformShader(t *testing.T) {
	spirv, err := CompileShaderToSPIRV(TransformShaderWGSL)
	skipIfUnsupported(t, err)
	if err != nil {
		t.Fatalf("CompileShaderToSPIRV: %v", err)
	}
	if len(spirv) < 5 {
		t.Fatalf("SPIR-V too short: %d words", len(spirv))
	}
	if spirv[0] != spirvMagic {
		t.Errorf("magic = %#x, want %#x", spirv[0], spirvMagic)
	}
}

func TestCompileShaderError(t *testing.T) {
	_, err := CompileShaderToSPIRV("fn broken( {")
	if err == nil {
		t.Fatal("expected error for invalid WGSL")
	}
	if !errors.Is(err, ErrShaderCompile) {
		t.Errorf("error %v does not wrap ErrShaderCompile", err)
	}
}

func TestShaderEntryPoints(t *testing.T) {
	for _, name := range []string{vertexEntryPoint, fragmentEntryPoint} {
		if !strings.Contains(TransformShaderWGSL, "fn "+name+"(") {
			t.Errorf("shader has no entry point %q", name)
		}
	}
}
