package enc

// Encoder is a binary-to-text codec. Implementations never allocate the output: the caller provides
// dst and can size it with EncodedLen / DecodedLen (or use the Append* helpers).
type Encoder interface {
	// Name is the user-friendly name of this encoder, also used as the variant name on the command line
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// EncodedLen returns the maximum number of characters Encode produces for n bytes
	EncodedLen(n int) int
	// DecodedLen returns the maximum number of bytes Decode produces for n characters
	DecodedLen(n int) int

	// Encode will take an array of bytes and encode it into dst, returning the number of characters written
	Encode(dst, src []byte) (int, error)

	// Decode is the reverse process of encoding
	Decode(dst, src []byte) (int, error)

	// Ratio is the average number of characters produced per input byte
	Ratio() float64

	// Return a list of test patterns for the specified encoding
	TestPatterns() [][]byte
}
