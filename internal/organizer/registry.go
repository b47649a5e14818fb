package organizer

// Registry 记录本次运行中已处理的内容指纹
// 生命周期仅限单次运行，不做任何持久化
// 必须在任何搬移决定之前查询；重复 Record 同一指纹没有副作用
type Registry struct {
	seen map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		seen: make(map[string]struct{}),
	}
}

// Seen 查询指纹是否已在本次运行中出现过
func (r *Registry) Seen(fingerprint string) bool {
	_, ok := r.seen[fingerprint]
	return ok
}

// Record 登记指纹
func (r *Registry) Record(fingerprint string) {
	r.seen[fingerprint] = struct{}{}
}

// Size 返回已登记的指纹数量
func (r *Registry) Size() int {
	return len(r.seen)
}
