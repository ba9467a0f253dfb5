package reedsolomon

// Polynomial is an immutable univariate polynomial with coefficients in a
// Field. Coefficients are stored most-significant-first: coefficients[0]
// is the highest-order term, coefficients[len-1] the constant term. Every
// operation returns a fresh Polynomial; storage is never mutated after
// construction.
type Polynomial struct {
	field        *Field
	coefficients []byte
}

// NewPolynomial builds a Polynomial from coefficients given most-significant
// first, stripping redundant leading zeros. A polynomial consisting only of
// zeros normalizes to the single-coefficient zero polynomial.
func NewPolynomial(field *Field, coefficients []byte) *Polynomial {
	n := len(coefficients)
	firstNonZero := 0
	for firstNonZero < n-1 && coefficients[firstNonZero] == 0 {
		firstNonZero++
	}
	if firstNonZero == 0 {
		c := make([]byte, n)
		copy(c, coefficients)
		return &Polynomial{field: field, coefficients: c}
	}
	c := make([]byte, n-firstNonZero)
	copy(c, coefficients[firstNonZero:])
	return &Polynomial{field: field, coefficients: c}
}

// Degree returns len(coefficients)-1 for a non-zero polynomial. The degree
// of the zero polynomial is defined as 0 — callers must call IsZero before
// relying on Degree in division logic.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return p.coefficients[0] == 0 }

// Coefficient returns the coefficient of x^degree. Degrees beyond p's
// degree are implicitly zero.
func (p *Polynomial) Coefficient(degree int) byte {
	if degree < 0 || degree > p.Degree() {
		return 0
	}
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates p(x) by Horner's rule. EvaluateAt(0) is the constant
// term; EvaluateAt(1) is the XOR of all coefficients.
func (p *Polynomial) EvaluateAt(x byte) byte {
	if x == 0 {
		return p.Coefficient(0)
	}
	if x == 1 {
		var result byte
		for _, c := range p.coefficients {
			result ^= c
		}
		return result
	}
	result := p.coefficients[0]
	f := p.field
	for i := 1; i < len(p.coefficients); i++ {
		result = f.Multiply(x, result) ^ p.coefficients[i]
	}
	return result
}

// AddOrSubtract returns p + other == p - other (characteristic 2): the XOR
// of coefficients aligned at the low (constant-term) end.
func (p *Polynomial) AddOrSubtract(other *Polynomial) *Polynomial {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}
	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	diff := len(larger) - len(smaller)
	sum := make([]byte, len(larger))
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = larger[i] ^ smaller[i-diff]
	}
	return NewPolynomial(p.field, sum)
}

// Multiply returns the convolution of p and other in GF(256).
func (p *Polynomial) Multiply(other *Polynomial) *Polynomial {
	if p.IsZero() || other.IsZero() {
		return p.field.zero
	}
	a, b := p.coefficients, other.coefficients
	product := make([]byte, len(a)+len(b)-1)
	f := p.field
	for i, ac := range a {
		if ac == 0 {
			continue
		}
		for j, bc := range b {
			if bc == 0 {
				continue
			}
			product[i+j] ^= f.Multiply(ac, bc)
		}
	}
	return NewPolynomial(p.field, product)
}

// MultiplyScalar scales every coefficient of p by scalar. A zero scalar
// yields the zero polynomial.
func (p *Polynomial) MultiplyScalar(scalar byte) *Polynomial {
	if scalar == 0 {
		return p.field.zero
	}
	if scalar == 1 {
		return p
	}
	f := p.field
	product := make([]byte, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = f.Multiply(c, scalar)
	}
	return NewPolynomial(f, product)
}

// MultiplyByMonomial returns p * coefficient * x^degree: p scaled, then
// padded with degree zero coefficients at the low end.
func (p *Polynomial) MultiplyByMonomial(degree int, coefficient byte) (*Polynomial, error) {
	if degree < 0 {
		return nil, &InvalidArgumentError{Msg: "multiplyByMonomial: negative degree"}
	}
	if coefficient == 0 {
		return p.field.zero, nil
	}
	f := p.field
	size := len(p.coefficients)
	product := make([]byte, size+degree)
	for i, c := range p.coefficients {
		product[i] = f.Multiply(c, coefficient)
	}
	return NewPolynomial(f, product), nil
}
