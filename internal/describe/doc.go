// Package describe fetches a camp's website and extracts the best available
// description text for rows that have none.
//
// Extraction prefers the Open Graph description, then the standard meta
// description, then body paragraphs in document order, skipping content
// nested under script, style, noscript, nav, footer, and header elements.
// Candidates shorter than a minimum length are ignored; longer ones are
// trimmed at a sentence boundary. Any transport or decoding failure simply
// yields no description and the pipeline moves on to the next row.
package describe
