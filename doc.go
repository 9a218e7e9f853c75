// Package imagefx provides pixel-buffer filters for image editing: Gaussian
// blur and general separable convolution, unsharp masking, a CMY color
// halftone and Fant area-averaging resampling.
//
// # Overview
//
// Every filter is a plain function over two [Region] values of equal size.
// Pixels are packed 32-bit ARGB words with straight alpha. A filter reads
// the whole source once, computes the result row by row and writes the
// destination when it is done, so src and dst may be the same region.
//
//	src := imagefx.FromImage(img)
//	dst := imagefx.NewPixelBuffer(src.Width, src.Height)
//	err := imagefx.Blur(ctx, src, dst, imagefx.DefaultBlurConfig(4))
//
// # Cancellation and Progress
//
// The context is checked between rows and columns. A canceled call returns
// ctx.Err() without writing the destination (the halftone, which writes
// row by row, keeps the rows it finished). Progress can be observed with
// [WithProgress].
//
// # Logging
//
// imagefx is silent by default. See [SetLogger] and [WithLogger].
//
// # Numeric Toolkit
//
// The interpolation, easing, spline and premultiplication helpers the
// filters are built from are exported by the imath subpackage.
package imagefx
