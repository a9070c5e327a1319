// Package conv computes the discrete convolution of two finite signals one
// multiply-accumulate at a time, for observation by a renderer.
//
// The stepper implements the input-side algorithm: the outer loop fixes the
// input sample, the inner loop walks the impulse response, and every product
// is accumulated directly into its output bin:
//
//	for inputIndex in 0..N-1:
//	    for impulseIndex in 0..M-1:
//	        out[inputIndex+impulseIndex] += in[inputIndex] * h[impulseIndex]
//
// Each call to [Stepper.Next] performs exactly one such accumulation and
// returns a [Step] record describing it, so a presentation layer can animate
// the partial sums. Driving the stepper to completion leaves the output
// signal equal to the full linear convolution of length N+M-1.
//
// # Usage
//
//	st, err := conv.NewStepper(input, impulse)
//	for !st.Done() {
//	    step, err := st.Next()
//	    // render step
//	}
//
// or, with an observer callback:
//
//	err := st.Run(func(step conv.Step) error {
//	    // render step
//	    return nil
//	})
//
// The stepper is strictly sequential and cannot be rewound; create a fresh
// instance to replay a convolution. It is not safe for concurrent use.
package conv
