package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(250), WithBlockSize(1024))
	if cfg.SampleRate != 250 {
		t.Fatalf("sample rate = %v, want 250", cfg.SampleRate)
	}

	if cfg.BlockSize != 1024 {
		t.Fatalf("block size = %d, want 1024", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), nil)

	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}
