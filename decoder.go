package reedsolomon

// Decoder decodes Reed-Solomon codewords over a fixed Field. A Decoder
// holds no mutable state of its own; it is safe to share across any
// number of concurrent callers, same as the Field it wraps.
type Decoder struct {
	field   *Field
	metrics *Metrics
}

// NewDecoder binds a Decoder to field.
func NewDecoder(field *Field) *Decoder {
	return &Decoder{field: field}
}

// Decode detects and corrects errors in received, in place. received holds
// data symbols followed by twoS parity symbols; the caller is responsible
// for knowing where the parity region starts. twoS is the number of parity
// symbols available, correcting up to twoS/2 errors.
//
// On success, received is mutated in place (or left untouched, if it was
// already a valid codeword) and Decode returns nil. On failure, Decode
// returns a *DecodeFailure and received is left untouched: error
// magnitudes are only written back after the full pipeline — syndromes,
// key equation, Chien search, and Forney's formula — succeeds.
func (d *Decoder) Decode(received []byte, twoS int) error {
	if twoS < 0 {
		return &InvalidArgumentError{Msg: "decode: negative twoS"}
	}
	if twoS == 0 {
		return nil
	}
	if twoS > len(received) {
		return &InvalidArgumentError{Msg: "decode: twoS exceeds received length"}
	}
	f := d.field
	poly := NewPolynomial(f, received)

	syndromeCoefficients := make([]byte, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(f.Exp(i))
		syndromeCoefficients[len(syndromeCoefficients)-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return nil
	}

	syndrome := NewPolynomial(f, syndromeCoefficients)
	monomial, err := f.BuildMonomial(twoS, 1)
	if err != nil {
		return err
	}
	sigma, omega, err := d.runEuclideanAlgorithm(monomial, syndrome, twoS)
	if err != nil {
		return err
	}

	errorLocations, err := d.findErrorLocations(sigma)
	if err != nil {
		return err
	}
	errorMagnitudes := d.findErrorMagnitudes(omega, errorLocations)

	positions := make([]int, len(errorLocations))
	for i, location := range errorLocations {
		position := len(received) - 1 - f.Log(location)
		if position < 0 || position >= len(received) {
			return &DecodeFailure{Reason: reasonLocatorMismatch}
		}
		positions[i] = position
	}
	for i, position := range positions {
		received[position] = AddOrSubtract(received[position], errorMagnitudes[i])
	}
	return nil
}

// runEuclideanAlgorithm solves the key equation sigma(x)*S(x) = omega(x)
// (mod x^R) for the error locator sigma and error evaluator omega, via the
// extended Euclidean algorithm. a and b are a = x^twoS, b = S(x); the
// larger-degree operand always plays the role of the dividend.
func (d *Decoder) runEuclideanAlgorithm(a, b *Polynomial, r int) (sigma, omega *Polynomial, err error) {
	f := d.field
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, rCur := a, b
	sLast, sCur := f.one, f.zero
	tLast, tCur := f.zero, f.one

	for rCur.Degree() >= r/2 {
		rLastLast, sLastLast, tLastLast := rLast, sLast, tLast
		rLast, sLast, tLast = rCur, sCur, tCur

		if rLast.IsZero() {
			return nil, nil, &DecodeFailure{Reason: reasonRPrevZero}
		}

		rCur = rLastLast
		q := f.zero
		denominatorLeadingTerm := rLast.Coefficient(rLast.Degree())
		dltInverse := f.Inverse(denominatorLeadingTerm)
		for rCur.Degree() >= rLast.Degree() && !rCur.IsZero() {
			degreeDiff := rCur.Degree() - rLast.Degree()
			scale := f.Multiply(rCur.Coefficient(rCur.Degree()), dltInverse)
			monomial, err := f.BuildMonomial(degreeDiff, scale)
			if err != nil {
				return nil, nil, err
			}
			q = q.AddOrSubtract(monomial)
			scaled, err := rLast.MultiplyByMonomial(degreeDiff, scale)
			if err != nil {
				return nil, nil, err
			}
			rCur = rCur.AddOrSubtract(scaled)
		}

		sCur = q.Multiply(sLast).AddOrSubtract(sLastLast)
		tCur = q.Multiply(tLast).AddOrSubtract(tLastLast)
	}

	sigmaTildeAtZero := tCur.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, &DecodeFailure{Reason: reasonSigmaTildeZero}
	}

	inverse := f.Inverse(sigmaTildeAtZero)
	return tCur.MultiplyScalar(inverse), rCur.MultiplyScalar(inverse), nil
}

// findErrorLocations runs Chien search: it evaluates errorLocator at every
// non-zero field element in increasing numeric order 1..255 and records
// the inverse of each root found. It requires exactly deg(errorLocator)
// roots.
func (d *Decoder) findErrorLocations(errorLocator *Polynomial) ([]byte, error) {
	f := d.field
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []byte{errorLocator.Coefficient(1)}, nil
	}
	result := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(byte(i)) == 0 {
			result = append(result, f.Inverse(byte(i)))
		}
	}
	if len(result) != numErrors {
		return nil, &DecodeFailure{Reason: reasonLocatorMismatch}
	}
	return result, nil
}

// findErrorMagnitudes applies Forney's formula to compute the magnitude of
// the error at each located position.
func (d *Decoder) findErrorMagnitudes(errorEvaluator *Polynomial, errorLocations []byte) []byte {
	f := d.field
	s := len(errorLocations)
	if s == 1 {
		return []byte{errorEvaluator.Coefficient(0)}
	}
	result := make([]byte, s)
	for i := 0; i < s; i++ {
		xiInverse := f.Inverse(errorLocations[i])
		var denominator byte = 1
		for j := 0; j < s; j++ {
			if i == j {
				continue
			}
			denominator = f.Multiply(denominator, AddOrSubtract(1, f.Multiply(errorLocations[j], xiInverse)))
		}
		result[i] = f.Multiply(errorEvaluator.EvaluateAt(xiInverse), f.Inverse(denominator))
	}
	return result
}
