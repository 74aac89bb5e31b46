package model

// Hyperparams はモデルのハイパーパラメータを保持するマップ
// JSON設定から読み込んだ値をそのまま渡せるよう、値はinterface{}で保持する
type Hyperparams map[string]interface{}

// Float はキーに対応する値をfloat64として取得する
// 数値型（float64, float32, int, int64）は暗黙的に変換される
// キーが存在しない場合や数値でない場合はok=falseを返す
func (h Hyperparams) Float(key string) (float64, bool) {
	v, ok := h[key]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

// Int はキーに対応する値をintとして取得する
// JSONデコード後のfloat64も整数値であれば変換される
func (h Hyperparams) Int(key string) (int, bool) {
	v, ok := h[key]
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	}
	return 0, false
}

// Clone はハイパーパラメータの独立したコピーを返す
// 構築後のモデルが呼び出し元のマップ変更の影響を受けないようにする
func (h Hyperparams) Clone() Hyperparams {
	if h == nil {
		return nil
	}
	c := make(Hyperparams, len(h))
	for k, v := range h {
		c[k] = v
	}
	return c
}
