package reedsolomon

import "testing"

func TestFieldExpLogRoundTrip(t *testing.T) {
	f := QRCodeField
	for v := 1; v < 256; v++ {
		i := f.Log(byte(v))
		if got := f.Exp(i); got != byte(v) {
			t.Fatalf("exp(log(%d))=%d, want %d", v, got, v)
		}
	}
	for i := 0; i < 255; i++ {
		v := f.Exp(i)
		if got := f.Log(v); got != i {
			t.Fatalf("log(exp(%d))=%d, want %d", i, got, i)
		}
	}
}

func TestFieldExpWraps(t *testing.T) {
	f := QRCodeField
	if f.Exp(0) != 1 {
		t.Fatalf("exp(0) = %d, want 1", f.Exp(0))
	}
	if f.Exp(255) != f.Exp(0) {
		t.Fatalf("exp(255) != exp(0)")
	}
}

func TestFieldMultiplyCommutative(t *testing.T) {
	f := QRCodeField
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if f.Multiply(byte(a), byte(b)) != f.Multiply(byte(b), byte(a)) {
				t.Fatalf("multiply(%d,%d) != multiply(%d,%d)", a, b, b, a)
			}
		}
	}
}

func TestFieldMultiplyInverse(t *testing.T) {
	f := QRCodeField
	for a := 1; a < 256; a++ {
		if got := f.Multiply(byte(a), f.Inverse(byte(a))); got != 1 {
			t.Fatalf("multiply(%d, inverse(%d)) = %d, want 1", a, a, got)
		}
	}
}

func TestFieldMultiplyByZero(t *testing.T) {
	f := QRCodeField
	for a := 0; a < 256; a++ {
		if f.Multiply(byte(a), 0) != 0 || f.Multiply(0, byte(a)) != 0 {
			t.Fatalf("multiply with 0 operand must be 0, a=%d", a)
		}
	}
}

func TestAddOrSubtractIsXOR(t *testing.T) {
	if AddOrSubtract(0x53, 0x0f) != 0x53^0x0f {
		t.Fatal("addOrSubtract must be XOR")
	}
	for a := 0; a < 256; a++ {
		if AddOrSubtract(byte(a), byte(a)) != 0 {
			t.Fatalf("a xor a must be 0, a=%d", a)
		}
	}
}

func TestDataMatrixFieldDistinctFromQR(t *testing.T) {
	// exp(0..7) are the plain powers of two in every GF(256) field; exp(8)
	// is the first entry reduced by the primitive polynomial, so different
	// primitive polynomials give different values there.
	if QRCodeField.Exp(8) == DataMatrixField.Exp(8) {
		t.Fatalf("exp(8) = %d in both fields, want distinct values", QRCodeField.Exp(8))
	}
}

func TestBuildMonomial(t *testing.T) {
	f := QRCodeField
	p, err := f.BuildMonomial(3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if p.Degree() != 3 || p.Coefficient(3) != 5 {
		t.Fatalf("unexpected monomial: degree=%d coeff(3)=%d", p.Degree(), p.Coefficient(3))
	}
	zero, err := f.BuildMonomial(4, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Fatal("buildMonomial with zero coefficient must be the zero polynomial")
	}
	if _, err := f.BuildMonomial(-1, 1); err == nil {
		t.Fatal("expected InvalidArgumentError for negative degree")
	}
}
