// Package regress implements classical regression modeling over paired
// observations: least-squares line fitting, polynomial regression, model
// selection via the Akaike information criterion, and logistic regression
// for binary outcomes.
//
// regress provides closed-form fitters built on gonum and an objective-based
// path (in the regress/optimizer subpackage) for fitting any model by
// minimizing a residual criterion directly.
//
// Basic usage:
//
//	d, err := regress.NewDataset(xs, ys)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	line, err := regress.FitLine(d)
//	fmt.Println(line, regress.RSquared(d, line))
package regress
