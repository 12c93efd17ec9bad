/*
Package primusfhe is the arithmetic core of a lattice-based homomorphic
encryption library. The modulus and field packages provide modular reduction
over fixed-width unsigned words and the 32-bit prime field with its key and
noise sampling distributions. The ntt package provides negacyclic
number-theoretic transforms over that field, backed by shared precomputed
twiddle tables.
*/
package primusfhe
