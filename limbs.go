package baseconv

// limbs is a magnitude stored as decimal digit values, least significant first.
// A canonical limbs value has at least one digit and no leading (high) zeros,
// except for zero itself, which is limbs{0}.
// Methods never modify their receiver or arguments.
type limbs []byte

// limbsFromUint64 decomposes v into decimal digits.
func limbsFromUint64(v uint64) limbs {
	if v == 0 {
		return limbs{0}
	}
	var buf [20]byte // math.MaxUint64 has 20 decimal digits
	n := 0
	for v > 0 {
		buf[n] = byte(v % 10)
		v /= 10
		n++
	}
	z := make(limbs, n)
	copy(z, buf[:n])
	return z
}

// norm trims leading zeros, keeping at least one digit.
func (x limbs) norm() limbs {
	n := len(x)
	for n > 1 && x[n-1] == 0 {
		n--
	}
	if n == 0 {
		return limbs{0}
	}
	return x[:n]
}

func (x limbs) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == 0)
}

// cmp compares magnitudes of canonical x and y and returns -1, 0 or +1.
func (x limbs) cmp(y limbs) int {
	switch {
	case len(x) > len(y):
		return 1
	case len(x) < len(y):
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] > y[i]:
			return 1
		case x[i] < y[i]:
			return -1
		}
	}
	return 0
}

// add calculates x + y and checks capacity.
func (x limbs) add(y limbs) (limbs, error) {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(limbs, len(x), len(x)+1)
	var carry byte
	for i := range x {
		s := x[i] + carry
		if i < len(y) {
			s += y[i]
		}
		z[i] = s % 10
		carry = s / 10
	}
	if carry != 0 {
		if len(z) == MaxDigits {
			return nil, errCapacity(len(z) + 1)
		}
		z = append(z, carry)
	}
	return z, nil
}

// mulSmall calculates x * k and checks capacity.
// mulSmall assumes that k <= MaxSmall.
func (x limbs) mulSmall(k uint64) (limbs, error) {
	// Special cases
	switch {
	case k == 0 || x.isZero():
		return limbs{0}, nil
	case k == 1:
		return x.clone(), nil
	}
	// General case
	z := make(limbs, len(x), len(x)+20)
	var carry uint64
	for i, v := range x {
		p := uint64(v)*k + carry
		z[i] = byte(p % 10)
		carry = p / 10
	}
	for carry > 0 {
		if len(z) == MaxDigits {
			return nil, errCapacity(len(z) + 1)
		}
		z = append(z, byte(carry%10))
		carry /= 10
	}
	return z, nil
}

// quoRemSmall calculates q = ⌊x / d⌋, r = x - d * q.
// quoRemSmall assumes that 1 <= d <= MaxSmall.
func (x limbs) quoRemSmall(d uint64) (q limbs, r uint64) {
	if x.isZero() {
		return limbs{0}, 0
	}
	q = make(limbs, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		r = r*10 + uint64(x[i])
		q[i] = byte(r / d)
		r %= d
	}
	return q.norm(), r
}

// uint64 returns x as uint64 and reports whether it fits.
func (x limbs) uint64() (uint64, bool) {
	if len(x) > 20 {
		return 0, false
	}
	var z fint
	var ok bool
	for i := len(x) - 1; i >= 0; i-- {
		z, ok = z.fma(10, uint64(x[i]))
		if !ok {
			return 0, false
		}
	}
	return uint64(z), true
}

func (x limbs) clone() limbs {
	z := make(limbs, len(x))
	copy(z, x)
	return z
}
