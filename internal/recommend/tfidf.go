package recommend

import "math"

// termVector maps terms to L2-normalised TF-IDF weights. A nil vector has
// no terms.
type termVector map[string]float64

// corpus collects document frequencies for IDF.
type corpus struct {
	docCount int
	docFreq  map[string]int
}

func newCorpus() *corpus {
	return &corpus{docFreq: make(map[string]int)}
}

func (c *corpus) add(counts map[string]float64) {
	c.docCount++
	for term := range counts {
		c.docFreq[term]++
	}
}

// idf uses the smoothed form ln((1+n)/(1+df)) + 1, so a term present in
// every document still carries weight.
func (c *corpus) idf() map[string]float64 {
	idf := make(map[string]float64, len(c.docFreq))
	n := float64(c.docCount)
	for term, df := range c.docFreq {
		idf[term] = math.Log((1+n)/(1+float64(df))) + 1
	}
	return idf
}

func (c *corpus) vocabularySize() int {
	return len(c.docFreq)
}

func termCounts(text string) map[string]float64 {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// vectorize fits the vocabulary on docs and returns one vector per doc in
// the same order, plus the vocabulary size.
func vectorize(docs []string) ([]termVector, int) {
	c := newCorpus()
	counts := make([]map[string]float64, len(docs))
	for i, doc := range docs {
		counts[i] = termCounts(doc)
		if counts[i] != nil {
			c.add(counts[i])
		}
	}
	// Empty documents still count toward n.
	c.docCount = len(docs)

	idf := c.idf()
	vectors := make([]termVector, len(docs))
	for i, tc := range counts {
		vectors[i] = weigh(tc, idf)
	}
	return vectors, c.vocabularySize()
}

func weigh(counts map[string]float64, idf map[string]float64) termVector {
	if len(counts) == 0 {
		return nil
	}
	v := make(termVector, len(counts))
	var norm float64
	for term, count := range counts {
		w := count * idf[term]
		v[term] = w
		norm += w * w
	}
	if norm == 0 {
		return nil
	}
	norm = math.Sqrt(norm)
	for term := range v {
		v[term] /= norm
	}
	return v
}

// dot is the cosine similarity of two L2-normalised vectors.
func dot(a, b termVector) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	var sum float64
	for term, w := range a {
		if other, ok := b[term]; ok {
			sum += w * other
		}
	}
	return sum
}
