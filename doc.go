// Package calct implements a calculator for hours and minutes.
//
// Expressions mix plain numbers with durations written like "3h23", "1h",
// "45m" or "2:30". Durations add and subtract with each other, multiply and
// divide by numbers, and "a @ b" gives the time from a to b, i.e. "b - a".
// Parentheses group as usual. For example, "3h23 @ 5h24 + 2 * (1h - 30m)" is
// 3h01.
//
// Evaluation happens in three steps which are exposed individually: Lex splits
// the source into tokens, Parse reorders them into postfix order, and
// Evaluate reduces the postfix sequence to a single Value. A Context carries
// the hour/minute separator used by all three, so different notations can be
// evaluated side by side.
package calct
