package qlocate

/*
Pipeline fully specifies one amplification run for an execution
backend: index bit-width, marking predicate, scheduled round count,
and the shot budget for sampling backends.
*/
type Pipeline struct {
	Qubits     int
	WorkQubits int
	Iterations int
	Shots      int
	Marking    MarkingFunc
}

/*
PipelineRequest is the wire shape of a pipeline for remote execution:
the marking predicate is flattened to the explicit list of marked
indices, since a closure cannot cross a provider boundary.
*/
type PipelineRequest struct {
	Qubits     int      `json:"qubits"`
	WorkQubits int      `json:"work_qubits"`
	Iterations int      `json:"iterations"`
	Shots      int      `json:"shots"`
	Marked     []uint64 `json:"marked"`
}

// newPipelineRequest flattens a pipeline for submission to a remote
// provider.
func newPipelineRequest(p *Pipeline) *PipelineRequest {
	req := &PipelineRequest{
		Qubits:     p.Qubits,
		WorkQubits: p.WorkQubits,
		Iterations: p.Iterations,
		Shots:      p.Shots,
	}
	for index := uint64(0); index < uint64(1)<<p.Qubits; index++ {
		if p.Marking(index) {
			req.Marked = append(req.Marked, index)
		}
	}
	return req
}

/*
Metadata reports the cost of a completed submission in the shape the
reporting layer consumes: operation count, circuit-depth equivalent,
and total qubit count including the oracle's work register.
*/
type Metadata struct {
	Backend    string
	Operations int
	Depth      int
	Qubits     int
	Shots      int
}

// costMetadata derives the cost metrics a local simulation reports.
// One round touches the full vector twice (oracle pass plus diffusion
// pass); depth counts state preparation plus two operators per round.
func costMetadata(backend string, p *Pipeline) Metadata {
	size := 1 << p.Qubits
	return Metadata{
		Backend:    backend,
		Operations: p.Iterations * 2 * size,
		Depth:      2*p.Iterations + 1,
		Qubits:     p.Qubits + p.WorkQubits,
		Shots:      p.Shots,
	}
}
