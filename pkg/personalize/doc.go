// Package personalize re-weights retrieved tips for one household and
// renders the textual artifacts handed to the response generator.
//
// Heating tips scale by the house type's heating factor; every tip
// gets an ROI of personalized savings over difficulty weight, and the
// final list is ranked by ROI. All outputs are per-query values,
// computed fresh each call and never persisted.
package personalize
