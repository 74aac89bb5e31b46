package model

import "gonum.org/v1/gonum/mat"

// Encoder は入力バッチを潜在分布のパラメータへ符号化するモデルのインターフェース
type Encoder interface {
	// Encode は入力Xを近似事後分布の平均と標準偏差へ写像する
	Encode(X mat.Matrix) (mean, std mat.Matrix, err error)
}

// Reparameterizer は再パラメータ化トリックによる潜在変数の標本化のインターフェース
type Reparameterizer interface {
	// Reparameterize は z = mean + std * eps により潜在変数を標本化する
	Reparameterize(mean, std mat.Matrix) (mat.Matrix, error)
}

// Decoder は潜在変数を入力空間へ復号するモデルのインターフェース
type Decoder interface {
	// Decode は潜在変数Zから再構成XHatを生成する
	Decode(Z mat.Matrix) (mat.Matrix, error)
}
