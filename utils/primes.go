package utils

import (
	"fmt"
	"math/big"
	"math/bits"
)

// IsPrime applies the Baillie-PSW test, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// NextNTTPrime returns the next prime congruent to 1 modulo nthRoot after q.
// The input q must itself be congruent to 1 modulo nthRoot.
func NextNTTPrime(q, nthRoot uint64) (qNext uint64, err error) {

	qNext = q + nthRoot

	for !IsPrime(qNext) {

		qNext += nthRoot

		if bits.Len64(qNext) > 61 {
			return 0, fmt.Errorf("next NTT prime exceeds the maximum bit-size of 61 bits")
		}
	}

	return qNext, nil
}

// PreviousNTTPrime returns the previous prime congruent to 1 modulo nthRoot before q.
// The input q must itself be congruent to 1 modulo nthRoot.
func PreviousNTTPrime(q, nthRoot uint64) (qPrev uint64, err error) {

	if q < nthRoot {
		return 0, fmt.Errorf("previous NTT prime is smaller than nthRoot")
	}

	qPrev = q - nthRoot

	for !IsPrime(qPrev) {

		if qPrev < nthRoot {
			return 0, fmt.Errorf("previous NTT prime is smaller than nthRoot")
		}

		qPrev -= nthRoot
	}

	return qPrev, nil
}

// GenerateNTTPrimes generates n distinct primes congruent to 1 modulo nthRoot,
// alternating above and below 2^logQ. It panics if logQ is larger than 61 bits
// or if the search space is exhausted before n primes are found.
func GenerateNTTPrimes(logQ int, nthRoot uint64, n int) (primes []uint64) {

	if logQ > 61 {
		panic("logQ must be between 1 and 61")
	}

	var nextPrime, previousPrime uint64
	checkNext, checkPrevious := true, true

	qPow2 := uint64(1 << logQ)

	nextPrime = qPow2 + 1
	previousPrime = qPow2 + 1

	primes = []uint64{}

	for {

		if !(checkNext || checkPrevious) {
			panic("GenerateNTTPrimes: cannot generate enough primes for the given parameters")
		}

		if checkNext {
			if nextPrime > 0xffffffffffffffff-nthRoot {
				checkNext = false
			} else {
				nextPrime += nthRoot
				if IsPrime(nextPrime) {
					primes = append(primes, nextPrime)
					if len(primes) == n {
						return
					}
				}
			}
		}

		if checkPrevious {
			if previousPrime < nthRoot {
				checkPrevious = false
			} else {
				previousPrime -= nthRoot
				if IsPrime(previousPrime) {
					primes = append(primes, previousPrime)
					if len(primes) == n {
						return
					}
				}
			}
		}
	}
}
