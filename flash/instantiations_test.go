package flash

import "testing"

func TestForwardInstantiationsUniqueNames(t *testing.T) {
	seen := make(map[string]bool, len(ForwardInstantiationsSM90))
	for _, inst := range ForwardInstantiationsSM90 {
		if seen[inst.Name] {
			t.Errorf("duplicate instantiation name %q", inst.Name)
		}
		seen[inst.Name] = true
	}
}

func TestForwardInstantiationsResolve(t *testing.T) {
	for _, inst := range ForwardInstantiationsSM90 {
		if inst.Problem.Arch != SM90 {
			t.Errorf("%s: arch = %s, want sm90", inst.Name, inst.Problem.Arch)
		}
		got := ForwardTileSM90(inst.Problem)
		if got.BlockM < 16 || got.BlockN < 16 || got.BlockN%16 != 0 {
			t.Errorf("%s: tile %+v violates invariants", inst.Name, got)
		}
		if inst.Problem.DType.Size() != 2 {
			continue
		}
		usage := got.SmemBytes(inst.Problem)
		if usage > smemLimitConsumer && got.BlockM != 16 && got.BlockN != 16 {
			t.Errorf("%s: tile %+v usage %d over consumer limit", inst.Name, got, usage)
		}
	}
}

func TestLookupInstantiation(t *testing.T) {
	inst, ok := LookupInstantiation("fwd_hdim128_fp16_causal_sm90")
	if !ok {
		t.Fatal("fwd_hdim128_fp16_causal_sm90 missing from grid")
	}
	if inst.Problem.HeadDim != 128 || !inst.Problem.Causal {
		t.Errorf("unexpected problem %+v", inst.Problem)
	}
	if _, ok := LookupInstantiation("fwd_hdim31_fp64_sm42"); ok {
		t.Error("lookup of unknown name succeeded")
	}
}
