// Package bitvector provides the two succinct-bitvector shapes the gbwt
// index needs: a sparse bitvector (few set bits over a large universe,
// such as record-start offsets into a multi-megabyte byte stream) with
// O(1) Select1 and O(log n) Rank1, and a dense bitvector (one bit per
// record) with O(1) Rank1 via a block-popcount index.
package bitvector
