// Package gpu implements the columnar compute engine on WebGPU.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package gpu

// WGSL compute kernels, keyed by stable name. String constants instead of
// embed for simplicity.

// workgroupSize is the default number of threads per workgroup.
const workgroupSize = 256

// Kernel names. These are the only entries in the program library; asking
// the pipeline cache for anything else fails with ErrKernelNotFound.
const (
	kernelSumReduce       = "sum_reduce"
	kernelMinReduce       = "min_reduce"
	kernelMaxReduce       = "max_reduce"
	kernelBitonicSortStep = "bitonic_sort_step"
	kernelFilterPredicate = "filter_predicate"
)

// kernelSources is the compiled-program library.
var kernelSources = map[string]string{
	kernelSumReduce:       sumReduceShader,
	kernelMinReduce:       minReduceShader,
	kernelMaxReduce:       maxReduceShader,
	kernelBitonicSortStep: bitonicSortStepShader,
	kernelFilterPredicate: filterPredicateShader,
}

// sumReduceShader folds the whole input with + inside a single lane.
// Correctness-first: O(n) work in one invocation, no accumulation-order
// surprises from partial-sum combination.
const sumReduceShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    count: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    if (global_id.x != 0u) {
        return;
    }
    var acc: f32 = 0.0;
    for (var i: u32 = 0u; i < params.count; i = i + 1u) {
        acc = acc + input[i];
    }
    result[0] = acc;
}
`

// minReduceShader folds the input with min. The host never dispatches it
// with count == 0.
const minReduceShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    count: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    if (global_id.x != 0u) {
        return;
    }
    var acc: f32 = input[0];
    for (var i: u32 = 1u; i < params.count; i = i + 1u) {
        acc = min(acc, input[i]);
    }
    result[0] = acc;
}
`

// maxReduceShader folds the input with max. Same contract as minReduceShader.
const maxReduceShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    count: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(1)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    if (global_id.x != 0u) {
        return;
    }
    var acc: f32 = input[0];
    for (var i: u32 = 1u; i < params.count; i = i + 1u) {
        acc = max(acc, input[i]);
    }
    result[0] = acc;
}
`

// bitonicSortStepShader runs one compare-exchange pass of the bitonic
// network over a power-of-two sized buffer. Element i pairs with i XOR j;
// only the lower index of each pair acts, so no pair is swapped twice.
// ((i & k) == 0) selects the direction of the enclosing bitonic block.
const bitonicSortStepShader = `
@group(0) @binding(0) var<storage, read_write> data: array<f32>;

struct Params {
    j: u32,
    k: u32,
    ascending: u32,
    n: u32,
}
@group(0) @binding(1) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let i = global_id.x;
    if (i >= params.n) {
        return;
    }
    let partner = i ^ params.j;
    if (partner <= i) {
        return;
    }
    let up = ((i & params.k) == 0u) == (params.ascending == 1u);
    let a = data[i];
    let b = data[partner];
    if ((up && a > b) || (!up && a < b)) {
        data[i] = b;
        data[partner] = a;
    }
}
`

// filterPredicateShader evaluates one comparison predicate per element into
// a 0/1 mask. Operator codes follow engine.CompareOp. NE is spelled as
// (v < t || v > t) so NaN matches nothing, same as the host evaluator.
const filterPredicateShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> mask: array<f32>;

struct Params {
    count: u32,
    op: u32,
    threshold: f32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx >= params.count) {
        return;
    }
    let v = input[idx];
    let t = params.threshold;
    var hit = false;
    switch (params.op) {
        case 0u: { hit = v == t; }
        case 1u: { hit = v < t || v > t; }
        case 2u: { hit = v < t; }
        case 3u: { hit = v <= t; }
        case 4u: { hit = v > t; }
        case 5u: { hit = v >= t; }
        default: { hit = false; }
    }
    mask[idx] = select(0.0, 1.0, hit);
}
`
