// Package signalsculptor synthesizes waveform point sequences that
// illustrate analog and digital modulation and baseband line coding.
//
// Every transform is a pure function of a few scalar parameters and a
// scheme selector. It returns a [Result] holding three time-ordered point
// sequences (input, transmitted, output) and the time the computation took.
//
// # Quick Start
//
//	res, err := signalsculptor.AnalogToAnalog(2, 1, signalsculptor.AM)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Transmitted)) // 400
//
// Bit strings drive the digital families:
//
//	res, err := signalsculptor.DigitalToDigital("10000000010", signalsculptor.B8ZS)
//
// # Transform Families
//
//   - [AnalogToAnalog]: AM, FM and PM of a 5x carrier by a sine message
//     sampled at 200 points per second for 2 seconds.
//   - [AnalogToDigitalPCM]: uniform quantization of a sine sampled at 100
//     points per second, read back through linear interpolation.
//   - [AnalogToDigitalDM]: one-bit delta modulation of the same signal.
//   - [DigitalToAnalog]: ASK, FSK and PSK keying, 101 points per bit.
//   - [DigitalToDigital]: NRZ-L, NRZ-I, Manchester, Differential
//     Manchester, AMI, Pseudoternary, B8ZS and HDB3.
//
// [Convert] dispatches a [Request] to the matching family.
//
// # Errors
//
// Invalid parameters yield [ErrInvalidParameter] together with a zero
// [Result], whose input and transmitted sequences are empty. Callers that
// only inspect [Result.IsEmpty] therefore see the same outcome as callers
// that check the error. Selector values outside the known schemes yield
// [ErrUnsupportedScheme].
//
// # Concurrency
//
// Transforms keep all running state (polarity, approximation, mark
// counter) in locals, so any number of goroutines may call them at once.
package signalsculptor
